package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/services"
)

// CreateServiceAreaCommandHandler handles service area creation.
//
// Overlap with existing areas is checked but not enforced: overlapping
// boundaries are a deliberate operational choice at times (area migrations,
// pilot zones), so the handler logs a warning per overlap and proceeds.
// The resolver cache is invalidated after commit so the new area is visible
// to resolution immediately.
type CreateServiceAreaCommandHandler struct {
	uowFactory AreaUoWFactory
	resolver   *services.ServiceAreaResolver
	logger     *slog.Logger
}

// NewCreateServiceAreaCommandHandler creates a handler for area creation.
func NewCreateServiceAreaCommandHandler(
	uowFactory AreaUoWFactory,
	resolver *services.ServiceAreaResolver,
	logger *slog.Logger,
) CreateServiceAreaCommandHandler {
	return CreateServiceAreaCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		logger:     logger.With("component", "create_service_area"),
	}
}

// Handle processes the area creation command.
func (h CreateServiceAreaCommandHandler) Handle(ctx context.Context, cmd CreateServiceAreaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	boundary, err := servicearea.NewRing(cmd.Vertices())
	if err != nil {
		return err
	}

	report, err := h.resolver.CheckPolygonOverlap(ctx, boundary, cmd.AreaID())
	if err != nil {
		return err
	}
	for _, overlap := range report.Overlaps {
		h.logger.Warn("new service area overlaps an existing area",
			"area_id", cmd.AreaID().String(),
			"area_name", cmd.Name(),
			"existing_id", overlap.AreaID.String(),
			"existing_name", overlap.Name,
			"overlap_pct", overlap.Pct,
		)
	}

	area, err := servicearea.NewServiceArea(cmd.AreaID(), cmd.Name(), boundary, cmd.Pincodes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceAreaRepository().Add(ctx, area); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.resolver.Invalidate(area.ID())
	return nil
}
