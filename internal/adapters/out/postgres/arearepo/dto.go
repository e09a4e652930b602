// Package arearepo provides data transfer objects and mapping functions for
// service area persistence. This package implements the repository pattern
// for the service area domain aggregate, handling the conversion between
// domain entities and database representations.
package arearepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"

	"github.com/google/uuid"
)

// ServiceAreaDTO represents the database structure for persisting service
// area aggregates. The polygon boundary and the pincode fallback set live
// in child tables keyed by area.
type ServiceAreaDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name     string       `gorm:"type:varchar(255);not null"`
	Status   int          `gorm:"type:smallint;not null;index"`
	Vertices []VertexDTO  `gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE"`
	Pincodes []PincodeDTO `gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for service area entities.
// Overrides GORM's default naming convention to use "service_areas".
func (ServiceAreaDTO) TableName() string {
	return "service_areas"
}

// VertexDTO represents one boundary polygon vertex. The sequence number
// preserves the perimeter walk order of the ring.
type VertexDTO struct {
	AreaID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq    int       `gorm:"primaryKey;autoIncrement:false"`
	Lat    float64   `gorm:"not null"`
	Lon    float64   `gorm:"not null"`
}

// TableName specifies the database table name for boundary vertices.
// Overrides GORM's default naming convention to use "service_area_vertices".
func (VertexDTO) TableName() string {
	return "service_area_vertices"
}

// PincodeDTO represents one entry of the area's pincode fallback set.
type PincodeDTO struct {
	AreaID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Pincode string    `gorm:"type:varchar(16);primaryKey"`
}

// TableName specifies the database table name for area pincodes.
// Overrides GORM's default naming convention to use "service_area_pincodes".
func (PincodeDTO) TableName() string {
	return "service_area_pincodes"
}

// fromDomain converts a service area domain aggregate to its database
// representation, flattening the boundary ring into vertex rows.
func fromDomain(area *servicearea.ServiceArea) ServiceAreaDTO {
	areaID := area.ID().Bytes()

	vertices := area.Boundary().Vertices()
	vertexDtos := make([]VertexDTO, 0, len(vertices))
	for i, v := range vertices {
		vertexDtos = append(vertexDtos, VertexDTO{
			AreaID: areaID,
			Seq:    i,
			Lat:    v.Latitude(),
			Lon:    v.Longitude(),
		})
	}

	pincodes := area.Pincodes()
	pincodeDtos := make([]PincodeDTO, 0, len(pincodes))
	for _, pin := range pincodes {
		pincodeDtos = append(pincodeDtos, PincodeDTO{
			AreaID:  areaID,
			Pincode: pin,
		})
	}

	return ServiceAreaDTO{
		ID:       areaID,
		Name:     area.Name(),
		Status:   int(area.Status()),
		Vertices: vertexDtos,
		Pincodes: pincodeDtos,
	}
}

// toDomain converts a database DTO to a service area domain aggregate.
// Rebuilds the boundary ring from vertex rows using RestoreServiceArea;
// ring validity is re-checked on the way in.
func toDomain(dto ServiceAreaDTO) (*servicearea.ServiceArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vertices := make([]kernel.GeoPoint, 0, len(dto.Vertices))
	for _, v := range dto.Vertices {
		point, pointErr := kernel.NewGeoPoint(v.Lat, v.Lon)
		if pointErr != nil {
			return nil, pointErr
		}
		vertices = append(vertices, point)
	}

	boundary, err := servicearea.NewRing(vertices)
	if err != nil {
		return nil, err
	}

	pincodes := make([]string, 0, len(dto.Pincodes))
	for _, pin := range dto.Pincodes {
		pincodes = append(pincodes, pin.Pincode)
	}

	return servicearea.RestoreServiceArea(
		id, dto.Name, boundary, servicearea.AreaStatus(dto.Status), pincodes)
}
