package slotrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMealSlotRepository implements MealSlotRepository using GORM.
type GormMealSlotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMealSlotRepository creates a new GORM meal slot repository.
func NewGormMealSlotRepository(db *gorm.DB, tracker aggregateTracker) *GormMealSlotRepository {
	return &GormMealSlotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new meal slot to the database.
func (r *GormMealSlotRepository) Add(ctx context.Context, slot *mealslot.MealSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(slot.ID(), slot)
	return nil
}

// Update saves an existing meal slot to the database.
func (r *GormMealSlotRepository) Update(ctx context.Context, slot *mealslot.MealSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)

	// Save rather than Updates: IsActive must be able to go back to false
	// when a slot is deactivated.
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(slot.ID(), slot)
	return nil
}

// Get retrieves a meal slot by ID.
func (r *GormMealSlotRepository) Get(ctx context.Context, id kernel.UUID) (*mealslot.MealSlot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MealSlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mealSlot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVendor retrieves all slots, active and inactive, defined by the
// given vendor, in start time order.
func (r *GormMealSlotRepository) GetAllByVendor(
	ctx context.Context,
	vendorID kernel.UUID,
) ([]*mealslot.MealSlot, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MealSlotDTO
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID.Bytes()).
		Order("start_minutes").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	slots := make([]*mealslot.MealSlot, 0, len(dtos))
	for _, dto := range dtos {
		slot, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
