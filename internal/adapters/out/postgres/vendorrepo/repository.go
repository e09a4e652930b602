package vendorrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Update saves an existing vendor to the database.
func (r *GormVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Get retrieves a vendor by ID.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
