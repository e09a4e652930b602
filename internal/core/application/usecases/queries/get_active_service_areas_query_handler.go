package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveServiceAreasQueryHandler retrieves active service areas from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetActiveServiceAreasQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveServiceAreasQueryHandler creates a handler for active area queries.
// Requires a GORM database connection for query execution.
func NewGetActiveServiceAreasQueryHandler(db *gorm.DB) GetActiveServiceAreasQueryHandler {
	return GetActiveServiceAreasQueryHandler{db: db}
}

// Handle executes the query to retrieve all active service areas.
// Returns a slice of area read models sorted by name.
func (h GetActiveServiceAreasQueryHandler) Handle(
	ctx context.Context,
	query GetActiveServiceAreasQuery,
) ([]GetActiveServiceAreasQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	areas := make([]GetActiveServiceAreasQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM service_areas
		WHERE status = ?
		ORDER BY name
	`, int(servicearea.Active)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var area GetActiveServiceAreasQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&area.Name,
		)
		if err != nil {
			return nil, err
		}

		areaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		area.ID = areaID

		areas = append(areas, area)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}
