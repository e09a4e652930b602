package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/mealslot"
	"fulfillment/internal/pkg/errs"
)

// CreateMealSlotCommandHandler handles meal slot creation for a vendor.
// The aggregate enforces the time format and ordering rules; the handler
// verifies the owning vendor exists.
type CreateMealSlotCommandHandler struct {
	uowFactory SlotUoWFactory
}

// NewCreateMealSlotCommandHandler creates a handler for slot creation.
func NewCreateMealSlotCommandHandler(uowFactory SlotUoWFactory) CreateMealSlotCommandHandler {
	return CreateMealSlotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the slot creation command.
func (h CreateMealSlotCommandHandler) Handle(ctx context.Context, cmd CreateMealSlotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	slot, err := mealslot.NewMealSlot(
		cmd.SlotID(),
		cmd.VendorID(),
		cmd.StartTime(),
		cmd.EndTime(),
		cmd.CutoffTime(),
		cmd.DurationMinutes(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.VendorRepository().Get(ctx, cmd.VendorID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrVendorNotFound
		}
		return err
	}

	if err = uow.MealSlotRepository().Add(ctx, slot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
