package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"
)

// ServiceAreaRepository defines the persistence contract for service area
// aggregates. It also serves as the resolver's area provider.
type ServiceAreaRepository interface {
	// Add persists a new service area aggregate to storage.
	Add(ctx context.Context, area *servicearea.ServiceArea) error

	// Update persists changes to an existing service area aggregate.
	Update(ctx context.Context, area *servicearea.ServiceArea) error

	// Get retrieves a service area aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error)

	// ActiveAreas retrieves all areas in Active status with their boundaries.
	ActiveAreas(ctx context.Context) ([]*servicearea.ServiceArea, error)
}
