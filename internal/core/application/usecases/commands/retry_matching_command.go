package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRetryMatchingCommandIsNotConstructed = errors.New(
		"RetryMatchingCommand must be created via NewRetryMatchingCommand constructor",
	)
	ErrAttemptIsInvalid = errors.New("attempt must not be negative")
)

// RetryMatchingCommand represents a follow-up matching round for an order
// whose earlier rounds produced no assignment. attempt counts completed
// rounds: 0 is the first retry.
type RetryMatchingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	attempt int

	guard guard.ConstructorGuard
}

// NewRetryMatchingCommand creates a retry command for the given round.
func NewRetryMatchingCommand(orderID kernel.UUID, attempt int) (RetryMatchingCommand, error) {
	retryCommand := RetryMatchingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		retryCommand.setOrderID(orderID),
		retryCommand.setAttempt(attempt),
	); err != nil {
		return RetryMatchingCommand{}, err
	}

	return retryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RetryMatchingCommand) Validate() error {
	return c.guard.Validate(ErrRetryMatchingCommandIsNotConstructed)
}

// OrderID returns the order to retry matching for.
func (c RetryMatchingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Attempt returns the retry round number, starting at 0.
func (c RetryMatchingCommand) Attempt() int {
	return c.attempt
}

func (c *RetryMatchingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RetryMatchingCommand) setAttempt(attempt int) error {
	if attempt < 0 {
		return ErrAttemptIsInvalid
	}

	c.attempt = attempt
	return nil
}
