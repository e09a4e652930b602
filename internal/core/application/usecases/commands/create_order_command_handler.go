package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrMealSlotNotFound   = errors.New("meal slot not found")
	ErrSlotVendorMismatch = errors.New("meal slot belongs to a different vendor")
	ErrSlotNotAvailable   = errors.New("meal slot is past cutoff or inactive")
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Validates the vendor's fulfillment rules, optionally checks meal slot
// availability and the requested delivery window, and persists the order in
// Pending status.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	policy     *services.FulfillmentPolicy
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// now may be nil, in which case time.Now is used; tests inject a fixed clock
// to exercise cutoff behavior.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	policy *services.FulfillmentPolicy,
	now func() time.Time,
) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        now,
	}
}

// Handle processes the order placement command.
// Fulfillment rules are checked before anything is written; the order and
// its seeded history entry are persisted in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrVendorNotFound
	}
	if err != nil {
		return err
	}

	if err = h.policy.ValidateFulfillment(ctx, vendor, cmd.Method(), cmd.AddressPoint()); err != nil {
		return err
	}

	var address *order.DeliveryAddress
	if cmd.AddressPoint() != nil {
		addr, addrErr := order.NewDeliveryAddress(kernel.NewUUID(), *cmd.AddressPoint(), cmd.AddressText())
		if addrErr != nil {
			return addrErr
		}
		address = &addr
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.VendorID(), cmd.Method(), address)
	if err != nil {
		return err
	}

	if cmd.MealSlotID() != nil {
		if err = h.schedule(ctx, uow, cmd, newOrder); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// schedule validates meal slot availability and the requested window, then
// attaches both to the order.
func (h CreateOrderCommandHandler) schedule(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
	newOrder *order.Order,
) error {
	slot, err := uow.MealSlotRepository().Get(ctx, *cmd.MealSlotID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrMealSlotNotFound
	}
	if err != nil {
		return err
	}

	if !slot.VendorID().IsEqual(cmd.VendorID()) {
		return ErrSlotVendorMismatch
	}

	nowTod, err := kernel.TimeOfDayFromMinutes(h.now().Hour()*60 + h.now().Minute())
	if err != nil {
		return err
	}
	if !slot.IsAvailable(nowTod) {
		return ErrSlotNotAvailable
	}

	window, err := slot.ValidateDeliveryWindow(cmd.WindowStart(), cmd.WindowEnd())
	if err != nil {
		return err
	}

	return newOrder.Schedule(slot.ID(), order.DeliveryWindow{Start: window.Start, End: window.End})
}
