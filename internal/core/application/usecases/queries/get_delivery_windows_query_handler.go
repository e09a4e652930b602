package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryWindowsQueryHandler computes the delivery windows of a meal
// slot from its stored time bounds. Window division lives on the aggregate,
// so the handler rehydrates the slot rather than re-deriving the split.
type GetDeliveryWindowsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryWindowsQueryHandler creates a handler for delivery window queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryWindowsQueryHandler(db *gorm.DB) GetDeliveryWindowsQueryHandler {
	return GetDeliveryWindowsQueryHandler{db: db}
}

// Handle executes the query and returns the slot's windows in order.
// A slot whose duration does not divide its time range evenly yields no
// window for the trailing remainder.
func (h GetDeliveryWindowsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryWindowsQuery,
) ([]GetDeliveryWindowsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			vendor_id,
			start_minutes,
			end_minutes,
			cutoff_minutes,
			duration_minutes,
			is_active
		FROM meal_slots
		WHERE id = ?
	`, query.SlotID().Bytes()).Row()

	var vendorID uuid.UUID
	var startMinutes, endMinutes, cutoffMinutes, durationMinutes int
	var isActive bool

	err := row.Scan(
		&vendorID,
		&startMinutes,
		&endMinutes,
		&cutoffMinutes,
		&durationMinutes,
		&isActive,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("mealSlot", query.SlotID())
	}
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(vendorID[:])
	if err != nil {
		return nil, err
	}

	slot, err := mealslot.RestoreMealSlot(
		query.SlotID(),
		ownerID,
		startMinutes,
		endMinutes,
		cutoffMinutes,
		durationMinutes,
		isActive,
	)
	if err != nil {
		return nil, err
	}

	windows := slot.DeliveryWindows()
	responses := make([]GetDeliveryWindowsQueryResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, GetDeliveryWindowsQueryResponse{
			Start: w.Start.String(),
			End:   w.End.String(),
		})
	}

	return responses, nil
}
