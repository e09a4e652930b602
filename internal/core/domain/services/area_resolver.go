package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"
)

// ErrAreaNotFound is returned when no active service area covers the given point.
var ErrAreaNotFound = errors.New("no service area covers the point")

// AreaProvider supplies the set of active service areas the resolver works
// against. The postgres adapter implements it; tests substitute a fake.
type AreaProvider interface {
	ActiveAreas(ctx context.Context) ([]*servicearea.ServiceArea, error)
}

// AreaOverlap describes one existing area a candidate boundary overlaps with.
type AreaOverlap struct {
	AreaID kernel.UUID
	Name   string
	// Pct is the share of the candidate's own area covered by the existing
	// area, as a percentage rounded to two decimals.
	Pct float64
}

// OverlapReport is the result of checking a candidate boundary against all
// existing active areas.
type OverlapReport struct {
	HasOverlap bool
	Overlaps   []AreaOverlap
}

// ServiceAreaResolver is a domain service that answers point-in-area queries:
// which service area covers a coordinate, which active area is nearest, and
// whether a coordinate is serviceable at all.
//
// Resolution walks every active area, so the resolver keeps a read-through
// snapshot of the active-area list with a TTL. Writers that change area
// geometry or status must call Invalidate or InvalidateAll so subsequent
// lookups see fresh data before the TTL expires.
//
// Invalid coordinates are rejected before any lookup, so a malformed request
// never populates or touches the cache.
//
// ServiceAreaResolver is safe for concurrent use.
type ServiceAreaResolver struct {
	provider AreaProvider
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	cached    []*servicearea.ServiceArea
	expiresAt time.Time
}

// NewServiceAreaResolver creates a resolver over the given provider.
// A non-positive ttl disables caching. now may be nil, in which case
// time.Now is used; tests inject a fake clock to exercise expiry.
func NewServiceAreaResolver(provider AreaProvider, ttl time.Duration, now func() time.Time) (*ServiceAreaResolver, error) {
	if provider == nil {
		return nil, errors.New("provider must not be nil")
	}
	if now == nil {
		now = time.Now
	}

	return &ServiceAreaResolver{
		provider: provider,
		ttl:      ttl,
		now:      now,
	}, nil
}

// ContainingServiceArea returns the active service area whose boundary
// contains the point. When several areas contain it, the first in provider
// order wins. Returns ErrAreaNotFound when no area covers the point.
func (r *ServiceAreaResolver) ContainingServiceArea(ctx context.Context, p kernel.GeoPoint) (*servicearea.ServiceArea, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	areas, err := r.activeAreas(ctx)
	if err != nil {
		return nil, err
	}

	for _, area := range areas {
		if area.Contains(p) {
			return area, nil
		}
	}

	return nil, ErrAreaNotFound
}

// NearestServiceArea returns the active area closest to the point along with
// the distance to its boundary in km. A containing area is nearest by
// definition with distance 0. Returns ErrAreaNotFound when no active areas
// exist.
func (r *ServiceAreaResolver) NearestServiceArea(ctx context.Context, p kernel.GeoPoint) (*servicearea.ServiceArea, float64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}

	areas, err := r.activeAreas(ctx)
	if err != nil {
		return nil, 0, err
	}

	var (
		nearest  *servicearea.ServiceArea
		bestDist = math.MaxFloat64
	)

	for _, area := range areas {
		if area.Contains(p) {
			return area, 0, nil
		}
		if d := area.Boundary().DistanceKm(p); d < bestDist {
			bestDist = d
			nearest = area
		}
	}

	if nearest == nil {
		return nil, 0, ErrAreaNotFound
	}

	return nearest, bestDist, nil
}

// IsServiceable reports whether any active service area covers the point.
func (r *ServiceAreaResolver) IsServiceable(ctx context.Context, p kernel.GeoPoint) (bool, error) {
	_, err := r.ContainingServiceArea(ctx, p)
	if errors.Is(err, ErrAreaNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CheckPolygonOverlap compares a candidate boundary against every active
// area except excludeID (pass a zero UUID when creating a new area) and
// reports which ones it overlaps and by how much. The report is advisory:
// callers decide whether an overlap blocks the operation.
func (r *ServiceAreaResolver) CheckPolygonOverlap(ctx context.Context, boundary servicearea.Ring, excludeID kernel.UUID) (OverlapReport, error) {
	if err := boundary.Validate(); err != nil {
		return OverlapReport{}, err
	}

	areas, err := r.activeAreas(ctx)
	if err != nil {
		return OverlapReport{}, err
	}

	report := OverlapReport{}
	for _, area := range areas {
		if area.ID().IsEqual(excludeID) {
			continue
		}
		if !boundary.Intersects(area.Boundary()) {
			continue
		}

		pct := math.Round(boundary.OverlapFraction(area.Boundary())*10000) / 100
		report.HasOverlap = true
		report.Overlaps = append(report.Overlaps, AreaOverlap{
			AreaID: area.ID(),
			Name:   area.Name(),
			Pct:    pct,
		})
	}

	return report, nil
}

// Invalidate drops the cached snapshot after a change to the given area.
// The cache is a whole-list snapshot, so any single-area change evicts it
// entirely.
func (r *ServiceAreaResolver) Invalidate(kernel.UUID) {
	r.InvalidateAll()
}

// InvalidateAll drops the cached snapshot. The next lookup reloads from the
// provider.
func (r *ServiceAreaResolver) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

func (r *ServiceAreaResolver) activeAreas(ctx context.Context) ([]*servicearea.ServiceArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Before(r.expiresAt) {
		return r.cached, nil
	}

	areas, err := r.provider.ActiveAreas(ctx)
	if err != nil {
		return nil, err
	}

	if r.ttl > 0 {
		r.cached = areas
		r.expiresAt = r.now().Add(r.ttl)
	}

	return areas, nil
}
