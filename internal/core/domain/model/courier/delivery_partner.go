package courier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
)

// PartnerStatus is the availability state of a delivery partner.
type PartnerStatus int

const (
	// PartnerStatusUnknown represents an invalid or undefined partner status.
	PartnerStatusUnknown PartnerStatus = iota

	// Available means the partner can be matched with new orders.
	Available

	// Busy means the partner is carrying an active delivery.
	Busy

	// Offline means the partner is off shift; their location is cleared.
	Offline
)

// Validate checks if the PartnerStatus is one of the defined statuses.
func (s PartnerStatus) Validate() error {
	switch s {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("partner status is invalid",
			fmt.Errorf("%d is not a valid partner status", s))
	}
}

// String returns the human-readable name of the status.
func (s PartnerStatus) String() string {
	switch s {
	case Available:
		return "Available"
	case Busy:
		return "Busy"
	case Offline:
		return "Offline"
	default:
		return "Unknown"
	}
}

// DeliveryPartner is the aggregate root for a courier. It tracks identity,
// availability, home service area, and the live location reported during
// active shifts.
//
// The location is nullable: a partner who is offline, or who has not yet
// sent a location ping, has no current location and is invisible to
// matching.
type DeliveryPartner struct {
	id            kernel.UUID
	name          string
	status        PartnerStatus
	location      *kernel.GeoPoint
	serviceAreaID kernel.UUID

	isConstructed bool
}

// NewDeliveryPartner creates an Offline partner with no location.
// Partners come online and report a location before they can be matched.
func NewDeliveryPartner(id kernel.UUID, name string, serviceAreaID kernel.UUID) (*DeliveryPartner, error) {
	return RestoreDeliveryPartner(id, name, Offline, nil, serviceAreaID)
}

// RestoreDeliveryPartner reconstructs a DeliveryPartner from persistence.
func RestoreDeliveryPartner(
	id kernel.UUID, name string, status PartnerStatus, location *kernel.GeoPoint, serviceAreaID kernel.UUID,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setServiceAreaID(serviceAreaID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		p.location = &loc
	}

	return p, nil
}

// Validate ensures the DeliveryPartner was properly constructed.
func (p *DeliveryPartner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID { return p.id }

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string { return p.name }

// Status returns the partner's availability status.
func (p *DeliveryPartner) Status() PartnerStatus { return p.status }

// ServiceAreaID returns the partner's home service area.
func (p *DeliveryPartner) ServiceAreaID() kernel.UUID { return p.serviceAreaID }

// Location returns the partner's current location, or nil when not on a shift.
func (p *DeliveryPartner) Location() *kernel.GeoPoint {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// IsMatchable reports whether the partner can be considered for a new order:
// available and with a known current location.
func (p *DeliveryPartner) IsMatchable() bool {
	return p.status == Available && p.location != nil
}

// UpdateLocation records a live location ping. Offline partners are brought
// back as Available by their first ping.
func (p *DeliveryPartner) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	p.location = &location
	if p.status == Offline {
		p.status = Available
	}
	return nil
}

// MarkBusy flags the partner as carrying an active delivery.
func (p *DeliveryPartner) MarkBusy() {
	p.status = Busy
}

// MarkAvailable returns the partner to the matchable pool after completing
// a delivery.
func (p *DeliveryPartner) MarkAvailable() {
	p.status = Available
}

// GoOffline takes the partner off shift and clears the stale location.
func (p *DeliveryPartner) GoOffline() {
	p.status = Offline
	p.location = nil
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setServiceAreaID(serviceAreaID kernel.UUID) error {
	if err := serviceAreaID.Validate(); err != nil {
		return err
	}
	p.serviceAreaID = serviceAreaID
	return nil
}
