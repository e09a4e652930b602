package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves the unassigned-order worklist
// from the database. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned delivery orders.
// Only orders in ReadyForPickup status without a partner qualify; results
// are sorted by order ID for consistent output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_id,
			address_text,
			window_start,
			window_end
		FROM orders
		WHERE courier_id IS NULL
		  AND status = ?
		ORDER BY id
	`, int(order.ReadyForPickup)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedOrdersQueryResponse
		var id, vendorID uuid.UUID
		var addressText sql.NullString
		var windowStart, windowEnd sql.NullInt64

		err = rows.Scan(
			&id,
			&vendorID,
			&addressText,
			&windowStart,
			&windowEnd,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.VendorID = ownerID

		resp.AddressText = addressText.String

		if resp.WindowStart, err = minutesToClock(windowStart); err != nil {
			return nil, err
		}
		if resp.WindowEnd, err = minutesToClock(windowEnd); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// minutesToClock converts a nullable minutes-since-midnight column to an
// "HH:MM" string, or nil when the column is NULL.
func minutesToClock(v sql.NullInt64) (*string, error) {
	if !v.Valid {
		return nil, nil
	}

	t, err := kernel.TimeOfDayFromMinutes(int(v.Int64))
	if err != nil {
		return nil, err
	}

	s := t.String()
	return &s, nil
}
