// Package partnerrepo provides data transfer objects and mapping functions for
// delivery partner persistence. This package implements the repository pattern
// for the partner domain aggregate, handling the conversion between domain
// entities and database representations.
package partnerrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting delivery
// partner aggregates. The location columns are null while the partner is
// offline or has never reported a position.
type PartnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Status        int       `gorm:"type:smallint;not null;index"`
	LocationLat   *float64
	LocationLon   *float64
	ServiceAreaID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "delivery_partners".
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(partner *courier.DeliveryPartner) PartnerDTO {
	dto := PartnerDTO{
		ID:            partner.ID().Bytes(),
		Name:          partner.Name(),
		Status:        int(partner.Status()),
		ServiceAreaID: partner.ServiceAreaID().Bytes(),
	}

	if loc := partner.Location(); loc != nil {
		lat := loc.Latitude()
		lon := loc.Longitude()
		dto.LocationLat = &lat
		dto.LocationLon = &lon
	}

	return dto
}

// toDomain converts a database DTO to a partner domain aggregate using
// RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*courier.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.ServiceAreaID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLon != nil {
		point, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLon)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return courier.RestoreDeliveryPartner(
		id, dto.Name, courier.PartnerStatus(dto.Status), location, areaID)
}
