// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment. Window bounds are
// stored as minutes since midnight.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Method      int        `gorm:"type:smallint;not null"`
	Status      int        `gorm:"type:smallint;not null;index"`
	AddressID   *uuid.UUID `gorm:"type:uuid"`
	AddressLat  *float64
	AddressLon  *float64
	AddressText *string           `gorm:"type:varchar(512)"`
	MealSlotID  *uuid.UUID        `gorm:"type:uuid;index"`
	WindowStart *int              `gorm:"type:smallint"`
	WindowEnd   *int              `gorm:"type:smallint"`
	History     []HistoryEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one append-only status history row. The
// sequence number preserves the order of entries within an order.
type HistoryEntryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey;autoIncrement:false"`
	Status  int       `gorm:"type:smallint;not null"`
	Note    string    `gorm:"type:varchar(512)"`
	At      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for history entries.
// Overrides GORM's default naming convention to use "order_history".
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional address, courier assignment
// and scheduling fields.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:       orderID,
		VendorID: aggregate.VendorID().Bytes(),
		Method:   int(aggregate.Method()),
		Status:   int(aggregate.Status()),
	}

	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}

	if addr := aggregate.Address(); addr != nil {
		addrID := addr.ID().Bytes()
		lat := addr.Point().Latitude()
		lon := addr.Point().Longitude()
		text := addr.Text()

		dto.AddressID = &addrID
		dto.AddressLat = &lat
		dto.AddressLon = &lon
		dto.AddressText = &text
	}

	if id := aggregate.MealSlot(); id != nil {
		raw := id.Bytes()
		dto.MealSlotID = &raw
	}

	if w := aggregate.PreferredWindow(); w != nil {
		start := w.Start.Minutes()
		end := w.End.Minutes()
		dto.WindowStart = &start
		dto.WindowEnd = &end
	}

	history := aggregate.History()
	dto.History = make([]HistoryEntryDTO, 0, len(history))
	for i, entry := range history {
		dto.History = append(dto.History, HistoryEntryDTO{
			OrderID: orderID,
			Seq:     i,
			Status:  int(entry.Status()),
			Note:    entry.Note(),
			At:      entry.At(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status history using
// RestoreOrder; the history invariant is re-validated on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	address, err := addressToDomain(dto)
	if err != nil {
		return nil, err
	}

	var mealSlotID *kernel.UUID
	if dto.MealSlotID != nil {
		sID, slotErr := kernel.UUIDFromBytes((*dto.MealSlotID)[:])
		if slotErr != nil {
			return nil, slotErr
		}
		mealSlotID = &sID
	}

	window, err := windowToDomain(dto)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := order.NewHistoryEntry(
			order.Status(entryDto.Status), entryDto.At, entryDto.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id,
		vendorID,
		order.FulfillmentMethod(dto.Method),
		order.Status(dto.Status),
		address,
		courierID,
		mealSlotID,
		window,
		history,
	)
}

// addressToDomain reconstructs the optional delivery address from its
// flattened columns.
func addressToDomain(dto OrderDTO) (*order.DeliveryAddress, error) {
	if dto.AddressID == nil || dto.AddressLat == nil || dto.AddressLon == nil || dto.AddressText == nil {
		return nil, nil
	}

	addrID, err := kernel.UUIDFromBytes((*dto.AddressID)[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(*dto.AddressLat, *dto.AddressLon)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(addrID, point, *dto.AddressText)
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// windowToDomain reconstructs the optional preferred delivery window from
// its minute columns.
func windowToDomain(dto OrderDTO) (*order.DeliveryWindow, error) {
	if dto.WindowStart == nil || dto.WindowEnd == nil {
		return nil, nil
	}

	start, err := kernel.TimeOfDayFromMinutes(*dto.WindowStart)
	if err != nil {
		return nil, err
	}

	end, err := kernel.TimeOfDayFromMinutes(*dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	return &order.DeliveryWindow{Start: start, End: end}, nil
}
