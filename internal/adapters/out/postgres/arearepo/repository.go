package arearepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceAreaRepository implements ServiceAreaRepository using GORM.
// It also serves as the resolver's area provider through ActiveAreas.
type GormServiceAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceAreaRepository creates a new GORM service area repository.
func NewGormServiceAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceAreaRepository {
	return &GormServiceAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service area with its boundary and pincodes.
func (r *GormServiceAreaRepository) Add(ctx context.Context, area *servicearea.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}

	dto := fromDomain(area)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(area.ID(), area)
	return nil
}

// Update saves an existing service area to the database.
func (r *GormServiceAreaRepository) Update(ctx context.Context, area *servicearea.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}

	dto := fromDomain(area)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(area.ID(), area)
	return nil
}

// Get retrieves a service area by ID with its boundary and pincodes.
func (r *GormServiceAreaRepository) Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceAreaDTO
	if err := r.db.WithContext(ctx).
		Preload("Vertices", verticesInOrder).
		Preload("Pincodes").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceArea", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ActiveAreas retrieves all areas in Active status with their boundaries.
// This is the resolver's provider method; results come back in name order.
func (r *GormServiceAreaRepository) ActiveAreas(ctx context.Context) ([]*servicearea.ServiceArea, error) {
	var dtos []ServiceAreaDTO
	if err := r.db.WithContext(ctx).
		Preload("Vertices", verticesInOrder).
		Preload("Pincodes").
		Where("status = ?", int(servicearea.Active)).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	areas := make([]*servicearea.ServiceArea, 0, len(dtos))
	for _, dto := range dtos {
		area, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// verticesInOrder preloads boundary vertices in their perimeter walk order.
func verticesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
