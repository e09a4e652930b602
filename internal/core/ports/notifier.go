package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentNotification tells a delivery partner that an order is up for
// grabs. It carries everything the partner needs to decide: where to pick
// up, where to deliver, how long the trip is, and what it pays.
type AssignmentNotification struct {
	OrderID    kernel.UUID
	PartnerID  kernel.UUID
	VendorName string

	// VendorLocation is the pickup point.
	VendorLocation kernel.GeoPoint

	// DeliveryPoint and DeliveryText describe the drop-off address.
	DeliveryPoint kernel.GeoPoint
	DeliveryText  string

	// DistanceKm is the partner-to-vendor distance computed during matching.
	DistanceKm float64

	// EstimatedDistanceKm is the vendor-to-delivery-address distance the
	// trip is quoted at.
	EstimatedDistanceKm float64

	// PayoutAmount is the offered payout for the trip, in rupees.
	PayoutAmount float64
}

// Notifier delivers matching events to delivery partners. Implementations
// are asynchronous and best-effort: a failed notification must not fail the
// matching round that produced it.
type Notifier interface {
	// NotifyAssignmentAvailable tells a partner an order can be accepted.
	NotifyAssignmentAvailable(ctx context.Context, n AssignmentNotification) error

	// NotifyAssignmentTaken tells a previously notified partner that the
	// order went to someone else.
	NotifyAssignmentTaken(ctx context.Context, orderID kernel.UUID, partnerID kernel.UUID) error

	// NotifiedPartners returns the partners notified about the order so far.
	// The record is best-effort and in-memory; callers use it only to send
	// courtesy cancellations, never for business decisions.
	NotifiedPartners(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error)
}
