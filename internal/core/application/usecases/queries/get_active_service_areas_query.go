package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActiveServiceAreasQueryIsNotConstructed = errors.New(
		"GetActiveServiceAreasQuery must be created via NewGetActiveServiceAreasQuery constructor",
	)
)

// GetActiveServiceAreasQuery retrieves the areas currently open for
// fulfillment. Returns area identities for coverage dashboards and for
// populating area pickers.
type GetActiveServiceAreasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveServiceAreasQuery creates a query to retrieve active areas.
// This is a parameterless query that fetches the complete active set.
func NewGetActiveServiceAreasQuery() GetActiveServiceAreasQuery {
	return GetActiveServiceAreasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveServiceAreasQueryIsNotConstructed if validation fails.
func (q GetActiveServiceAreasQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveServiceAreasQueryIsNotConstructed)
}

// GetActiveServiceAreasQueryResponse represents an active service area in
// the read model.
type GetActiveServiceAreasQueryResponse struct {
	ID   kernel.UUID
	Name string
}
