// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
		"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
	)
)

// GetUnassignedOrdersQuery retrieves delivery orders that are ready for
// pickup and have no delivery partner yet. This is the worklist for the
// matching retry loop and for manual dispatch.
//
// Example:
//
//	query := NewGetUnassignedOrdersQuery()
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve unassigned orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s awaiting a partner at %s\n", o.ID, o.AddressText)
//	}
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve unassigned orders.
// This is a parameterless query that fetches the complete worklist.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse represents an unassigned order in the
// read model. Window times are "HH:MM" strings; both are nil for orders
// without a scheduled slot.
type GetUnassignedOrdersQueryResponse struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	AddressText string
	WindowStart *string
	WindowEnd   *string
}
