package services

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrMethodNotEnabled is returned when the requested fulfillment method is
	// disabled in the vendor's configuration.
	ErrMethodNotEnabled = errors.New("fulfillment method is not enabled for the vendor")

	// ErrDeliveryAddressIsRequired is returned when a delivery order carries
	// no address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")

	// ErrAddressNotServiceable is returned when no active service area covers
	// the delivery address.
	ErrAddressNotServiceable = errors.New("delivery address is not serviceable")

	// ErrVendorCannotReach is returned when the delivery address is
	// serviceable but outside the vendor's reach.
	ErrVendorCannotReach = errors.New("vendor cannot reach the delivery address")
)

// MethodNotEnabledError reports which method was requested and rejected.
type MethodNotEnabledError struct {
	Method order.FulfillmentMethod
}

// Error implements the error interface.
func (e *MethodNotEnabledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMethodNotEnabled, e.Method)
}

// Unwrap supports error chain inspection with errors.Is.
func (e *MethodNotEnabledError) Unwrap() error {
	return ErrMethodNotEnabled
}

// VendorReachError reports why a vendor cannot deliver to an address: either
// the address resolves to a different service area than the vendor's, or it
// lies beyond the vendor's service radius. DistanceKm always carries the
// computed vendor-to-address distance so callers can surface it.
type VendorReachError struct {
	DistanceKm float64
	RadiusKm   float64
	SameArea   bool
}

// Error implements the error interface.
func (e *VendorReachError) Error() string {
	if !e.SameArea {
		return fmt.Sprintf("%s: address is in a different service area (distance %.2f km)",
			ErrVendorCannotReach, e.DistanceKm)
	}
	return fmt.Sprintf("%s: distance %.2f km exceeds service radius %.2f km",
		ErrVendorCannotReach, e.DistanceKm, e.RadiusKm)
}

// Unwrap supports error chain inspection with errors.Is.
func (e *VendorReachError) Unwrap() error {
	return ErrVendorCannotReach
}

// FulfillmentPolicy is a domain service that decides whether a vendor can
// fulfill an order via the requested method.
//
// Business rules:
//   - the method must be enabled in the vendor's fulfillment configuration,
//   - EatIn and Pickup need nothing further; any provided address is ignored,
//   - Delivery requires an address, the address must lie in an active
//     service area, that area must be the vendor's own, and the Haversine
//     distance from vendor to address must not exceed the vendor's service
//     radius.
//
// Each rule fails with a distinct error so the transport layer can map them
// to precise responses.
type FulfillmentPolicy struct {
	resolver *ServiceAreaResolver
}

// NewFulfillmentPolicy creates a FulfillmentPolicy over the given resolver.
func NewFulfillmentPolicy(resolver *ServiceAreaResolver) (*FulfillmentPolicy, error) {
	if resolver == nil {
		return nil, errors.New("resolver must not be nil")
	}
	return &FulfillmentPolicy{resolver: resolver}, nil
}

// ValidateFulfillment checks the rules in order and returns the first
// violation. addr may be nil for EatIn and Pickup.
func (f *FulfillmentPolicy) ValidateFulfillment(
	ctx context.Context,
	v *vendor.Vendor,
	method order.FulfillmentMethod,
	addr *kernel.GeoPoint,
) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := method.Validate(); err != nil {
		return err
	}

	if !v.Config().Allows(method) {
		return &MethodNotEnabledError{Method: method}
	}

	if method != order.Delivery {
		return nil
	}

	if addr == nil {
		return ErrDeliveryAddressIsRequired
	}

	area, err := f.resolver.ContainingServiceArea(ctx, *addr)
	if errors.Is(err, ErrAreaNotFound) {
		return ErrAddressNotServiceable
	}
	if err != nil {
		return err
	}

	distance, err := v.DistanceToKm(*addr)
	if err != nil {
		return err
	}

	if !area.ID().IsEqual(v.ServiceAreaID()) {
		return &VendorReachError{DistanceKm: distance, RadiusKm: v.ServiceRadiusKm(), SameArea: false}
	}
	if distance > v.ServiceRadiusKm() {
		return &VendorReachError{DistanceKm: distance, RadiusKm: v.ServiceRadiusKm(), SameArea: true}
	}

	return nil
}
