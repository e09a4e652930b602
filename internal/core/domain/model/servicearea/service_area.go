package servicearea

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrServiceAreaIsNotConstructed is returned when a ServiceArea was not created
	// through the NewServiceArea or RestoreServiceArea factory methods.
	ErrServiceAreaIsNotConstructed = errors.New("ServiceArea must be created via NewServiceArea constructor")

	// ErrNameIsRequired is returned when creating a service area without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// AreaStatus is the coverage status of a service area.
type AreaStatus int

const (
	// AreaStatusUnknown represents an invalid or undefined area status.
	AreaStatusUnknown AreaStatus = iota

	// Active means the area currently gates delivery eligibility.
	Active

	// Inactive means the area is retained for history but excluded from
	// containment and routing decisions. Deactivation is a soft flag; areas
	// are never physically deleted because vendors and addresses reference them.
	Inactive
)

// Validate checks if the AreaStatus is one of the defined statuses.
func (s AreaStatus) Validate() error {
	switch s {
	case Active, Inactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("area status is invalid",
			fmt.Errorf("%d is not a valid area status", s))
	}
}

// String returns the human-readable name of the status.
func (s AreaStatus) String() string {
	switch s {
	case Active:
		return "Active"
	case Inactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// ServiceArea is an administrator-defined geographic polygon with a coverage
// status and a pincode set as a coarse fallback for callers without a
// coordinate. Referenced, not owned, by vendors, addresses and couriers.
//
// Active areas should not overlap each other; this is checked when areas are
// created or edited, not enforced at write time, so containment queries may
// see a point inside more than one area when data is inconsistent.
type ServiceArea struct {
	id       kernel.UUID
	name     string
	boundary Ring
	status   AreaStatus
	pincodes map[string]struct{}

	isConstructed bool
}

// NewServiceArea creates an Active service area with the given boundary and
// optional pincode fallback list.
func NewServiceArea(id kernel.UUID, name string, boundary Ring, pincodes []string) (*ServiceArea, error) {
	return RestoreServiceArea(id, name, boundary, Active, pincodes)
}

// RestoreServiceArea reconstructs a ServiceArea from persistence.
func RestoreServiceArea(
	id kernel.UUID, name string, boundary Ring, status AreaStatus, pincodes []string,
) (*ServiceArea, error) {
	area := &ServiceArea{
		isConstructed: true,
		pincodes:      make(map[string]struct{}, len(pincodes)),
	}

	if err := errors.Join(
		area.setID(id),
		area.setName(name),
		area.setBoundary(boundary),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	area.status = status

	for _, pin := range pincodes {
		if pin != "" {
			area.pincodes[pin] = struct{}{}
		}
	}

	return area, nil
}

// Validate ensures the ServiceArea was properly constructed.
func (a *ServiceArea) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrServiceAreaIsNotConstructed
	}
	return nil
}

// ID returns the area's unique identifier.
func (a *ServiceArea) ID() kernel.UUID { return a.id }

// Name returns the human-readable area name.
func (a *ServiceArea) Name() string { return a.name }

// Boundary returns the area's polygon boundary.
func (a *ServiceArea) Boundary() Ring { return a.boundary }

// Status returns the area's coverage status.
func (a *ServiceArea) Status() AreaStatus { return a.status }

// IsActive reports whether the area currently participates in routing.
func (a *ServiceArea) IsActive() bool { return a.status == Active }

// Pincodes returns the pincode fallback set as a sorted-independent slice.
func (a *ServiceArea) Pincodes() []string {
	out := make([]string, 0, len(a.pincodes))
	for pin := range a.pincodes {
		out = append(out, pin)
	}
	return out
}

// MatchesPincode reports whether pin is in the area's fallback set.
func (a *ServiceArea) MatchesPincode(pin string) bool {
	_, ok := a.pincodes[pin]
	return ok
}

// Contains reports whether the point lies within the area's boundary,
// regardless of status. Callers filter on IsActive for routing decisions.
func (a *ServiceArea) Contains(p kernel.GeoPoint) bool {
	return a.boundary.Contains(p)
}

// Deactivate soft-disables the area. Idempotent.
func (a *ServiceArea) Deactivate() {
	a.status = Inactive
}

// Activate re-enables the area. Idempotent.
func (a *ServiceArea) Activate() {
	a.status = Active
}

func (a *ServiceArea) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *ServiceArea) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *ServiceArea) setBoundary(boundary Ring) error {
	if err := boundary.Validate(); err != nil {
		return err
	}
	a.boundary = boundary
	return nil
}
