package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// DefaultSearchRadiusKm is the partner search radius for a first matching
// round. Retries widen it.
const DefaultSearchRadiusKm = 5.0

var (
	ErrMatchCouriersCommandIsNotConstructed = errors.New(
		"MatchCouriersCommand must be created via NewMatchCouriersCommand constructor",
	)
	ErrSearchRadiusIsInvalid = errors.New("search radius must be greater than 0")
)

// MatchCouriersCommand represents a request to run one matching round for an
// order: find nearby available partners and notify them.
type MatchCouriersCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	searchRadiusKm float64

	guard guard.ConstructorGuard
}

// NewMatchCouriersCommand creates a matching command with an explicit search
// radius. Use DefaultSearchRadiusKm for a first round.
func NewMatchCouriersCommand(orderID kernel.UUID, searchRadiusKm float64) (MatchCouriersCommand, error) {
	matchCommand := MatchCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		matchCommand.setOrderID(orderID),
		matchCommand.setSearchRadiusKm(searchRadiusKm),
	); err != nil {
		return MatchCouriersCommand{}, err
	}

	return matchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMatchCouriersCommandIsNotConstructed)
}

// OrderID returns the order to match.
func (c MatchCouriersCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SearchRadiusKm returns the partner search radius for this round.
func (c MatchCouriersCommand) SearchRadiusKm() float64 {
	return c.searchRadiusKm
}

func (c *MatchCouriersCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MatchCouriersCommand) setSearchRadiusKm(searchRadiusKm float64) error {
	if searchRadiusKm <= 0 {
		return ErrSearchRadiusIsInvalid
	}

	c.searchRadiusKm = searchRadiusKm
	return nil
}
