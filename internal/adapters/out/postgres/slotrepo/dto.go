// Package slotrepo provides data transfer objects and mapping functions for
// meal slot persistence. This package implements the repository pattern for
// the meal slot domain aggregate, handling the conversion between domain
// entities and database representations.
package slotrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"

	"github.com/google/uuid"
)

// MealSlotDTO represents the database structure for persisting meal slot
// aggregates. Time bounds are stored as minutes since midnight.
type MealSlotDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	StartMinutes    int       `gorm:"type:smallint;not null"`
	EndMinutes      int       `gorm:"type:smallint;not null"`
	CutoffMinutes   int       `gorm:"type:smallint;not null"`
	DurationMinutes int       `gorm:"type:smallint;not null"`
	IsActive        bool      `gorm:"not null"`
}

// TableName specifies the database table name for meal slot entities.
// Overrides GORM's default naming convention to use "meal_slots".
func (MealSlotDTO) TableName() string {
	return "meal_slots"
}

// fromDomain converts a meal slot domain aggregate to its database representation.
func fromDomain(slot *mealslot.MealSlot) MealSlotDTO {
	return MealSlotDTO{
		ID:              slot.ID().Bytes(),
		VendorID:        slot.VendorID().Bytes(),
		StartMinutes:    slot.StartTime().Minutes(),
		EndMinutes:      slot.EndTime().Minutes(),
		CutoffMinutes:   slot.CutoffTime().Minutes(),
		DurationMinutes: slot.DurationMinutes(),
		IsActive:        slot.IsActive(),
	}
}

// toDomain converts a database DTO to a meal slot domain aggregate using
// RestoreMealSlot; time ordering is re-validated on the way in.
func toDomain(dto MealSlotDTO) (*mealslot.MealSlot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return mealslot.RestoreMealSlot(
		id,
		vendorID,
		dto.StartMinutes,
		dto.EndMinutes,
		dto.CutoffMinutes,
		dto.DurationMinutes,
		dto.IsActive,
	)
}
