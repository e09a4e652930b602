package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrServiceAreaNotFound is returned when a referenced service area does not exist.
var ErrServiceAreaNotFound = errors.New("service area not found")

const (
	// basePayoutAmount is the flat payout per delivery, in rupees.
	basePayoutAmount = 30.0

	// payoutPerKm is the payout per vendor-to-address kilometre, in rupees.
	payoutPerKm = 10.0
)

// MatchResult reports the outcome of one matching round.
// A round that found nobody to notify is still a successful round.
type MatchResult struct {
	// NotifiedCount is how many partners actually received a notification.
	NotifiedCount int
	// EstimatedDistanceKm is the vendor-to-delivery-address distance quoted
	// in the notifications, 0 when the round never got that far.
	EstimatedDistanceKm float64
	// CandidateIDs lists the selected partners in ranking order.
	CandidateIDs []kernel.UUID
	// Escalated is set when the retry handler gave up on the order and
	// flagged it for manual assignment.
	Escalated bool
}

// MatchCouriersCommandHandler runs one matching round for a delivery order:
// it selects eligible partners near the vendor and notifies them that the
// order is up for acceptance. The winner is decided later, when a partner
// accepts.
//
// A round is a no-op (empty result, no error) when the order is terminal,
// already has a courier, is not yet ready for pickup, or is not a delivery
// order. This keeps the retry loop idempotent: re-running a round for an
// order that moved on does nothing.
type MatchCouriersCommandHandler struct {
	uowFactory MatchingUoWFactory
	selector   services.CandidateSelector
	notifier   ports.Notifier
}

// NewMatchCouriersCommandHandler creates a handler for matching rounds.
func NewMatchCouriersCommandHandler(
	uowFactory MatchingUoWFactory,
	selector services.CandidateSelector,
	notifier ports.Notifier,
) MatchCouriersCommandHandler {
	return MatchCouriersCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		notifier:   notifier,
	}
}

// Handle processes the matching command and reports the round's outcome.
// Notifications are best-effort: a partner whose notification fails is
// simply not counted.
func (h MatchCouriersCommandHandler) Handle(ctx context.Context, cmd MatchCouriersCommand) (MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return MatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return MatchResult{}, ErrOrderNotFound
	}
	if err != nil {
		return MatchResult{}, err
	}

	if !matchable(aggregate) {
		return MatchResult{}, nil
	}

	vendor, err := uow.VendorRepository().Get(ctx, aggregate.VendorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return MatchResult{}, ErrVendorNotFound
	}
	if err != nil {
		return MatchResult{}, err
	}

	area, err := uow.ServiceAreaRepository().Get(ctx, vendor.ServiceAreaID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return MatchResult{}, ErrServiceAreaNotFound
	}
	if err != nil {
		return MatchResult{}, err
	}

	// Re-check the delivery address against current coverage. The order
	// passed this at creation, but the area may have been deactivated or
	// redrawn since, and a stale order must not reach any partner.
	if !addressServiceable(aggregate, area) {
		return MatchResult{}, nil
	}

	estimatedKm, err := vendor.Location().DistanceKm(aggregate.Address().Point())
	if err != nil {
		return MatchResult{}, err
	}

	partners, err := uow.PartnerRepository().GetAllAvailableInArea(ctx, area.ID())
	if err != nil {
		return MatchResult{}, err
	}

	candidates, err := h.selector.Select(vendor, partners, area, cmd.SearchRadiusKm())
	if err != nil {
		return MatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{EstimatedDistanceKm: estimatedKm}
	for _, candidate := range candidates {
		result.CandidateIDs = append(result.CandidateIDs, candidate.Partner.ID())

		notifyErr := h.notifier.NotifyAssignmentAvailable(ctx, ports.AssignmentNotification{
			OrderID:             aggregate.ID(),
			PartnerID:           candidate.Partner.ID(),
			VendorName:          vendor.Name(),
			VendorLocation:      vendor.Location(),
			DeliveryPoint:       aggregate.Address().Point(),
			DeliveryText:        aggregate.Address().Text(),
			DistanceKm:          candidate.DistanceKm,
			EstimatedDistanceKm: estimatedKm,
			PayoutAmount:        basePayoutAmount + payoutPerKm*estimatedKm,
		})
		if notifyErr == nil {
			result.NotifiedCount++
		}
	}

	return result, nil
}

// matchable reports whether the order can still be matched to a courier.
func matchable(aggregate *order.Order) bool {
	if aggregate.Method() != order.Delivery {
		return false
	}
	if aggregate.Status().IsTerminal() || aggregate.Courier() != nil {
		return false
	}
	return aggregate.Status() == order.ReadyForPickup
}

// addressServiceable reports whether the order's delivery address still lies
// inside the active boundary of the vendor's service area.
func addressServiceable(aggregate *order.Order, area *servicearea.ServiceArea) bool {
	addr := aggregate.Address()
	if addr == nil {
		return false
	}
	return area.IsActive() && area.Boundary().Contains(addr.Point())
}
