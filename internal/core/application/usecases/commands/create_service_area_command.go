package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateServiceAreaCommandIsNotConstructed = errors.New(
	"CreateServiceAreaCommand must be created via NewCreateServiceAreaCommand constructor",
)

// ErrAreaNameIsRequired is returned when a service area command has no name.
var ErrAreaNameIsRequired = errs.NewValueIsRequiredError("name")

// CreateServiceAreaCommand represents a request to define a new service
// area with a polygon boundary and an optional pincode fallback set.
type CreateServiceAreaCommand struct { //nolint:recvcheck //using for validation
	areaID   kernel.UUID
	name     string
	vertices []kernel.GeoPoint
	pincodes []string

	guard guard.ConstructorGuard
}

// NewCreateServiceAreaCommand creates a command to define a service area.
// Boundary geometry is validated by the handler when the ring is built.
func NewCreateServiceAreaCommand(
	areaID kernel.UUID,
	name string,
	vertices []kernel.GeoPoint,
	pincodes []string,
) (CreateServiceAreaCommand, error) {
	areaCommand := CreateServiceAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		areaCommand.setAreaID(areaID),
		areaCommand.setName(name),
	); err != nil {
		return CreateServiceAreaCommand{}, err
	}

	areaCommand.vertices = vertices
	areaCommand.pincodes = pincodes

	return areaCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceAreaCommandIsNotConstructed)
}

// AreaID returns the identifier for the new area.
func (c CreateServiceAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Name returns the area's display name.
func (c CreateServiceAreaCommand) Name() string {
	return c.name
}

// Vertices returns the boundary polygon's vertices.
func (c CreateServiceAreaCommand) Vertices() []kernel.GeoPoint {
	return c.vertices
}

// Pincodes returns the pincode fallback set.
func (c CreateServiceAreaCommand) Pincodes() []string {
	return c.pincodes
}

func (c *CreateServiceAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateServiceAreaCommand) setName(name string) error {
	if name == "" {
		return ErrAreaNameIsRequired
	}

	c.name = name
	return nil
}
