package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsIncomplete    = errors.New("address requires both coordinates and text")
	ErrWindowIsIncomplete     = errors.New("preferred window requires both start and end")
	ErrWindowRequiresMealSlot = errors.New("preferred window requires a meal slot")
)

// CreateOrderCommand represents a request to place a new order with a vendor.
// The address is required for Delivery and optional otherwise; a meal slot
// with a preferred delivery window may be attached at placement time.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, vendorID, order.Delivery,
//	    &point, "12 MG Road, Bengaluru", &slotID, "12:30", "13:00")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy, nil)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	vendorID     kernel.UUID
	method       order.FulfillmentMethod
	addressPoint *kernel.GeoPoint
	addressText  string
	mealSlotID   *kernel.UUID
	windowStart  string
	windowEnd    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifier and method well-formedness and the completeness of
// the optional address and window pairs; business rules such as vendor
// reach are checked by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	method order.FulfillmentMethod,
	addressPoint *kernel.GeoPoint,
	addressText string,
	mealSlotID *kernel.UUID,
	windowStart string,
	windowEnd string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setMethod(method),
		orderCommand.setAddress(addressPoint, addressText),
		orderCommand.setSchedule(mealSlotID, windowStart, windowEnd),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor the order is placed with.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Method returns the requested fulfillment method.
func (c CreateOrderCommand) Method() order.FulfillmentMethod {
	return c.method
}

// AddressPoint returns the delivery coordinates, or nil when not provided.
func (c CreateOrderCommand) AddressPoint() *kernel.GeoPoint {
	return c.addressPoint
}

// AddressText returns the human-readable delivery address.
func (c CreateOrderCommand) AddressText() string {
	return c.addressText
}

// MealSlotID returns the requested meal slot, or nil for immediate orders.
func (c CreateOrderCommand) MealSlotID() *kernel.UUID {
	return c.mealSlotID
}

// WindowStart returns the preferred window start as "HH:MM", or empty.
func (c CreateOrderCommand) WindowStart() string {
	return c.windowStart
}

// WindowEnd returns the preferred window end as "HH:MM", or empty.
func (c CreateOrderCommand) WindowEnd() string {
	return c.windowEnd
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setMethod(method order.FulfillmentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *CreateOrderCommand) setAddress(point *kernel.GeoPoint, text string) error {
	if point == nil && text == "" {
		return nil
	}
	if point == nil || text == "" {
		return ErrAddressIsIncomplete
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.addressPoint = point
	c.addressText = text
	return nil
}

func (c *CreateOrderCommand) setSchedule(mealSlotID *kernel.UUID, windowStart, windowEnd string) error {
	if mealSlotID == nil {
		if windowStart != "" || windowEnd != "" {
			return ErrWindowRequiresMealSlot
		}
		return nil
	}

	if err := mealSlotID.Validate(); err != nil {
		return err
	}
	if windowStart == "" || windowEnd == "" {
		return ErrWindowIsIncomplete
	}

	c.mealSlotID = mealSlotID
	c.windowStart = windowStart
	c.windowEnd = windowEnd
	return nil
}
