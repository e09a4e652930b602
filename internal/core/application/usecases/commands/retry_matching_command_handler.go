package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

const (
	// maxMatchingAttempts bounds automatic retries; beyond it the order is
	// flagged for manual assignment by an operator.
	maxMatchingAttempts = 3

	// radiusStepKm is how much each retry widens the partner search radius.
	radiusStepKm = 5.0

	// ManualAssignmentNote is the history annotation recorded when automatic
	// matching gives up on an order.
	ManualAssignmentNote = "requires manual assignment"
)

// RetryMatchingCommandHandler widens the search radius on each retry round
// and escalates to manual assignment once the attempts are exhausted.
// Escalation is recorded as an annotation entry in the order's history, not
// a status change: the order stays ReadyForPickup so an operator can still
// assign it.
type RetryMatchingCommandHandler struct {
	matchHandler MatchCouriersCommandHandler
	uowFactory   OrderUoWFactory
}

// NewRetryMatchingCommandHandler creates a handler for matching retries.
func NewRetryMatchingCommandHandler(
	matchHandler MatchCouriersCommandHandler,
	uowFactory OrderUoWFactory,
) RetryMatchingCommandHandler {
	return RetryMatchingCommandHandler{
		matchHandler: matchHandler,
		uowFactory:   uowFactory,
	}
}

// Handle processes the retry command. Rounds below the attempt cap run a
// normal matching round with radius base + step*attempt; at the cap the
// order is annotated for manual assignment, nobody is notified, and the
// result carries the Escalated flag so callers stop retrying.
func (h RetryMatchingCommandHandler) Handle(ctx context.Context, cmd RetryMatchingCommand) (MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return MatchResult{}, err
	}

	if cmd.Attempt() >= maxMatchingAttempts {
		if err := h.escalate(ctx, cmd); err != nil {
			return MatchResult{}, err
		}
		return MatchResult{Escalated: true}, nil
	}

	matchCommand, err := NewMatchCouriersCommand(
		cmd.OrderID(),
		DefaultSearchRadiusKm+radiusStepKm*float64(cmd.Attempt()),
	)
	if err != nil {
		return MatchResult{}, err
	}

	return h.matchHandler.Handle(ctx, matchCommand)
}

// escalate flags the order for manual assignment. Idempotent: an order
// already flagged is not annotated again.
func (h RetryMatchingCommandHandler) escalate(ctx context.Context, cmd RetryMatchingCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	for _, entry := range aggregate.History() {
		if entry.Note() == ManualAssignmentNote {
			return uow.Commit(ctx)
		}
	}

	aggregate.AppendNote(ManualAssignmentNote)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
