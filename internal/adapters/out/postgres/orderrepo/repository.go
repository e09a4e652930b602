package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database, upserting any history
// entries appended since the last read. History rows are never deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full history in sequence order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves delivery orders ready for pickup with no
// courier yet. This is the worklist of the matching retry loop.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("courier_id IS NULL AND status = ? AND method = ?",
			int(order.ReadyForPickup), int(order.Delivery)).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AssignCourier atomically claims the order for a courier with a conditional
// update. The claim only lands while the row is still ReadyForPickup with no
// courier; a concurrent claim that lost the race gets ErrAlreadyAssigned.
func (r *GormOrderRepository) AssignCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ?",
			orderID.Bytes(), int(order.ReadyForPickup)).
		Update("courier_id", courierID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.assignConflict(ctx, orderID)
	}

	return nil
}

// assignConflict explains a failed claim: the order is gone, already has a
// courier, or left ReadyForPickup before the claim landed.
func (r *GormOrderRepository) assignConflict(ctx context.Context, orderID kernel.UUID) error {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Select("id", "courier_id").
		First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return err
	}

	if dto.CourierID != nil {
		winner, err := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if err != nil {
			return err
		}
		return &order.AlreadyAssignedError{OrderID: orderID, CourierID: winner}
	}

	return order.ErrAlreadyAssigned
}

// historyInOrder preloads history rows in their append sequence.
func historyInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
