// Package ports defines repository and notification interfaces for the
// fulfillment domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, partner *courier.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, partner *courier.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.DeliveryPartner, error)

	// GetAllAvailableInArea retrieves Available partners with a known
	// location assigned to the given service area. Matching filters the
	// result further by geometry and distance.
	GetAllAvailableInArea(ctx context.Context, areaID kernel.UUID) ([]*courier.DeliveryPartner, error)
}
