package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when using an improperly initialized DeliveryAddress.
	ErrAddressIsNotConstructed = errors.New("DeliveryAddress must be created via NewDeliveryAddress constructor")

	// ErrAddressTextIsRequired is returned when the human-readable address text is empty.
	ErrAddressTextIsRequired = errs.NewValueIsRequiredError("address text")
)

// DeliveryAddress is the delivery destination for an order: a validated
// coordinate plus the human-readable address string shown to couriers.
// It is an immutable value object.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	point kernel.GeoPoint
	text  string

	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a DeliveryAddress with validation.
// The id must be a valid UUID, the point a constructed GeoPoint, and the
// text non-empty.
func NewDeliveryAddress(id kernel.UUID, point kernel.GeoPoint, text string) (DeliveryAddress, error) {
	addr := DeliveryAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setID(id),
		addr.setPoint(point),
		addr.setText(text),
	); err != nil {
		return DeliveryAddress{}, err
	}

	return addr, nil
}

// Validate ensures the DeliveryAddress was created through the constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address identifier.
func (a DeliveryAddress) ID() kernel.UUID {
	return a.id
}

// Point returns the address coordinate.
func (a DeliveryAddress) Point() kernel.GeoPoint {
	return a.point
}

// Text returns the human-readable address string.
func (a DeliveryAddress) Text() string {
	return a.text
}

func (a *DeliveryAddress) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAddress) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.point = point
	return nil
}

func (a *DeliveryAddress) setText(text string) error {
	if text == "" {
		return ErrAddressTextIsRequired
	}
	a.text = text
	return nil
}
