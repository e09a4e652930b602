package partnerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, partner *courier.DeliveryPartner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := fromDomain(partner)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(partner.ID(), partner)
	return nil
}

// Update saves an existing delivery partner to the database.
func (r *GormPartnerRepository) Update(ctx context.Context, partner *courier.DeliveryPartner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := fromDomain(partner)

	// Save rather than Updates: the location columns must be able to go
	// back to NULL when a partner goes offline.
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(partner.ID(), partner)
	return nil
}

// Get retrieves a delivery partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*courier.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPartner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailableInArea retrieves Available partners with a known location
// assigned to the given service area. Matching filters the result further
// by geometry and distance.
func (r *GormPartnerRepository) GetAllAvailableInArea(
	ctx context.Context,
	areaID kernel.UUID,
) ([]*courier.DeliveryPartner, error) {
	if err := areaID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Where("service_area_id = ? AND status = ? AND location_lat IS NOT NULL",
			areaID.Bytes(), int(courier.Available)).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*courier.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}
