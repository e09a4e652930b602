package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDeliveryWindowsQueryIsNotConstructed = errors.New(
		"GetDeliveryWindowsQuery must be created via NewGetDeliveryWindowsQuery constructor",
	)
)

// GetDeliveryWindowsQuery retrieves the selectable delivery windows of a
// meal slot. Customers pick one of these windows when placing a scheduled
// order.
//
// Example:
//
//	query, err := NewGetDeliveryWindowsQuery(slotID)
//	if err != nil {
//	    return err
//	}
//
//	windows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve delivery windows: %w", err)
//	}
//
//	for _, w := range windows {
//	    fmt.Printf("%s - %s\n", w.Start, w.End)
//	}
type GetDeliveryWindowsQuery struct { //nolint:recvcheck //using for validation
	slotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryWindowsQuery creates a query for a slot's delivery windows.
func NewGetDeliveryWindowsQuery(slotID kernel.UUID) (GetDeliveryWindowsQuery, error) {
	windowsQuery := GetDeliveryWindowsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := windowsQuery.setSlotID(slotID); err != nil {
		return GetDeliveryWindowsQuery{}, err
	}

	return windowsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryWindowsQueryIsNotConstructed if validation fails.
func (q GetDeliveryWindowsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryWindowsQueryIsNotConstructed)
}

// SlotID returns the meal slot being queried.
func (q GetDeliveryWindowsQuery) SlotID() kernel.UUID {
	return q.slotID
}

func (q *GetDeliveryWindowsQuery) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return err
	}

	q.slotID = slotID
	return nil
}

// GetDeliveryWindowsQueryResponse represents one selectable delivery window
// in the read model. Times are "HH:MM" strings ready for display.
type GetDeliveryWindowsQueryResponse struct {
	Start string
	End   string
}
