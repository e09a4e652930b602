package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateMealSlotCommandIsNotConstructed = errors.New(
	"CreateMealSlotCommand must be created via NewCreateMealSlotCommand constructor",
)

// CreateMealSlotCommand represents a request to define a new meal slot for
// a vendor. Time fields are carried as "HH:MM" strings; the aggregate
// validates format and ordering.
type CreateMealSlotCommand struct { //nolint:recvcheck //using for validation
	slotID          kernel.UUID
	vendorID        kernel.UUID
	startTime       string
	endTime         string
	cutoffTime      string
	durationMinutes int

	guard guard.ConstructorGuard
}

// NewCreateMealSlotCommand creates a command to define a meal slot.
func NewCreateMealSlotCommand(
	slotID kernel.UUID,
	vendorID kernel.UUID,
	startTime string,
	endTime string,
	cutoffTime string,
	durationMinutes int,
) (CreateMealSlotCommand, error) {
	slotCommand := CreateMealSlotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		slotCommand.setSlotID(slotID),
		slotCommand.setVendorID(vendorID),
	); err != nil {
		return CreateMealSlotCommand{}, err
	}

	slotCommand.startTime = startTime
	slotCommand.endTime = endTime
	slotCommand.cutoffTime = cutoffTime
	slotCommand.durationMinutes = durationMinutes

	return slotCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMealSlotCommand) Validate() error {
	return c.guard.Validate(ErrCreateMealSlotCommandIsNotConstructed)
}

// SlotID returns the identifier for the new slot.
func (c CreateMealSlotCommand) SlotID() kernel.UUID {
	return c.slotID
}

// VendorID returns the owning vendor.
func (c CreateMealSlotCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// StartTime returns the delivery start as "HH:MM".
func (c CreateMealSlotCommand) StartTime() string {
	return c.startTime
}

// EndTime returns the delivery end as "HH:MM".
func (c CreateMealSlotCommand) EndTime() string {
	return c.endTime
}

// CutoffTime returns the order cutoff as "HH:MM".
func (c CreateMealSlotCommand) CutoffTime() string {
	return c.cutoffTime
}

// DurationMinutes returns the delivery window length.
func (c CreateMealSlotCommand) DurationMinutes() int {
	return c.durationMinutes
}

func (c *CreateMealSlotCommand) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return err
	}

	c.slotID = slotID
	return nil
}

func (c *CreateMealSlotCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
