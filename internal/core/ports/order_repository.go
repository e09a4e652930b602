package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their append-only status history; every
// read rehydrates the full history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including any
	// history entries appended since the last read.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassigned retrieves delivery orders that are ready for pickup
	// but have no courier yet. Used by the matching retry loop.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// AssignCourier atomically claims the order for a courier. The claim
	// succeeds only when the order is still ReadyForPickup with no courier;
	// a concurrent claim loses with order.ErrAlreadyAssigned.
	AssignCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error
}
