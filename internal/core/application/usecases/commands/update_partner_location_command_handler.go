package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// UpdatePartnerLocationCommandHandler records a partner's live location.
// An offline partner's first ping brings them back as Available, which is
// how partners rejoin the matchable pool after a shift break.
type UpdatePartnerLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerLocationCommandHandler creates a handler for location pings.
func NewUpdatePartnerLocationCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location ping.
func (h UpdatePartnerLocationCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerLocationCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	partner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPartnerNotFound
	}
	if err != nil {
		return err
	}

	if err = partner.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, partner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
