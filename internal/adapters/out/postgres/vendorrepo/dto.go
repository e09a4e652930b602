// Package vendorrepo provides data transfer objects and mapping functions
// for vendor persistence. This package implements the repository pattern for
// the vendor domain aggregate, handling the conversion between domain
// entities and database representations.
package vendorrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor
// aggregates. The fulfillment configuration is flattened into one boolean
// column per method.
type VendorDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	LocationLat     float64   `gorm:"not null"`
	LocationLon     float64   `gorm:"not null"`
	ServiceRadiusKm float64   `gorm:"not null"`
	ServiceAreaID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EatInEnabled    bool      `gorm:"not null"`
	PickupEnabled   bool      `gorm:"not null"`
	DeliveryEnabled bool      `gorm:"not null"`
}

// TableName specifies the database table name for vendor entities.
// Overrides GORM's default naming convention to use "vendors".
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(v *vendor.Vendor) VendorDTO {
	config := v.Config()

	return VendorDTO{
		ID:              v.ID().Bytes(),
		Name:            v.Name(),
		LocationLat:     v.Location().Latitude(),
		LocationLon:     v.Location().Longitude(),
		ServiceRadiusKm: v.ServiceRadiusKm(),
		ServiceAreaID:   v.ServiceAreaID().Bytes(),
		EatInEnabled:    config.EatInEnabled,
		PickupEnabled:   config.PickupEnabled,
		DeliveryEnabled: config.DeliveryEnabled,
	}
}

// toDomain converts a database DTO to a vendor domain aggregate. Vendors
// carry no lifecycle state beyond their constructor arguments, so NewVendor
// doubles as the restore path.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.ServiceAreaID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.LocationLat, dto.LocationLon)
	if err != nil {
		return nil, err
	}

	return vendor.NewVendor(
		id,
		dto.Name,
		location,
		dto.ServiceRadiusKm,
		areaID,
		vendor.FulfillmentConfig{
			EatInEnabled:    dto.EatInEnabled,
			PickupEnabled:   dto.PickupEnabled,
			DeliveryEnabled: dto.DeliveryEnabled,
		},
	)
}
