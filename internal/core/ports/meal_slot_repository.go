package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"
)

// MealSlotRepository defines the persistence contract for meal slot
// aggregates.
type MealSlotRepository interface {
	// Add persists a new meal slot aggregate to storage.
	Add(ctx context.Context, slot *mealslot.MealSlot) error

	// Update persists changes to an existing meal slot aggregate.
	Update(ctx context.Context, slot *mealslot.MealSlot) error

	// Get retrieves a meal slot aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*mealslot.MealSlot, error)

	// GetAllByVendor retrieves all slots (active and inactive) defined by
	// the given vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*mealslot.MealSlot, error)
}
