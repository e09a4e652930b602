package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var ErrPartnerNotFound = errors.New("delivery partner not found")

// AcceptOrderCommandHandler handles a delivery partner accepting an order.
//
// Acceptance is first-wins: the in-memory aggregate check is backed by a
// conditional update in the order repository, so two partners racing on the
// same order resolve to a single winner and the loser gets
// order.ErrAlreadyAssigned. The winner is marked Busy in the same
// transaction. After commit, partners notified in earlier matching rounds
// receive a best-effort cancellation notice.
type AcceptOrderCommandHandler struct {
	uowFactory AcceptOrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory AcceptOrderUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	partner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPartnerNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.AssignCourier(cmd.PartnerID()); err != nil {
		return err
	}

	// The conditional claim is the authoritative check against concurrent
	// acceptances working on stale copies of the order.
	if err = orderRepo.AssignCourier(ctx, cmd.OrderID(), cmd.PartnerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	partner.MarkBusy()
	if err = partnerRepo.Update(ctx, partner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cancelOutstandingNotifications(ctx, cmd)
	return nil
}

// cancelOutstandingNotifications tells the losing partners the order is
// gone. Failures are swallowed: the assignment already committed.
func (h AcceptOrderCommandHandler) cancelOutstandingNotifications(ctx context.Context, cmd AcceptOrderCommand) {
	notified, err := h.notifier.NotifiedPartners(ctx, cmd.OrderID())
	if err != nil {
		return
	}

	for _, partnerID := range notified {
		if partnerID.IsEqual(cmd.PartnerID()) {
			continue
		}
		_ = h.notifier.NotifyAssignmentTaken(ctx, cmd.OrderID(), partnerID)
	}
}
