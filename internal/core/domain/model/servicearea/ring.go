package servicearea

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// overlapGridSize is the sampling resolution per axis used to measure ring
// overlap area. A 100x100 grid keeps the reported percentage stable to well
// under one percent for realistic city-scale polygons.
const overlapGridSize = 100

// kmPerDegreeLat is the approximate north-south span of one degree of latitude.
const kmPerDegreeLat = 111.32

// ErrRingTooSmall is returned when constructing a ring with fewer than three vertices.
var ErrRingTooSmall = errs.NewValueIsInvalidError("polygon ring needs at least 3 vertices")

// Ring is a closed geographic polygon boundary given as an ordered vertex
// list in WGS-84 coordinates. The closing edge from the last vertex back to
// the first is implicit. Ring is immutable after construction.
type Ring struct {
	vertices []kernel.GeoPoint
}

// NewRing creates a Ring from at least three validated vertices.
func NewRing(vertices []kernel.GeoPoint) (Ring, error) {
	if len(vertices) < 3 {
		return Ring{}, ErrRingTooSmall
	}

	var joined error
	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			joined = errors.Join(joined, fmt.Errorf("vertex %d: %w", i, err))
		}
	}
	if joined != nil {
		return Ring{}, joined
	}

	copied := make([]kernel.GeoPoint, len(vertices))
	copy(copied, vertices)
	return Ring{vertices: copied}, nil
}

// Validate checks that the ring was constructed with enough vertices.
func (r Ring) Validate() error {
	if len(r.vertices) < 3 {
		return ErrRingTooSmall
	}
	return nil
}

// Vertices returns a copy of the ring's vertex list.
func (r Ring) Vertices() []kernel.GeoPoint {
	out := make([]kernel.GeoPoint, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// Contains reports whether the point lies inside the ring, using the
// even-odd ray casting rule. Points exactly on an edge may fall on either
// side; boundaries are treated as data-entry artifacts, not contracts.
func (r Ring) Contains(p kernel.GeoPoint) bool {
	lat, lon := p.Latitude(), p.Longitude()
	inside := false

	n := len(r.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := r.vertices[i], r.vertices[j]
		if (vi.Latitude() > lat) != (vj.Latitude() > lat) {
			cross := (vj.Longitude()-vi.Longitude())*(lat-vi.Latitude())/
				(vj.Latitude()-vi.Latitude()) + vi.Longitude()
			if lon < cross {
				inside = !inside
			}
		}
	}

	return inside
}

// DistanceKm returns the shortest distance from the point to the ring's
// boundary in kilometers. Segments are measured in a local equirectangular
// projection centered on the point, which is accurate at the city scales
// service areas are drawn at.
func (r Ring) DistanceKm(p kernel.GeoPoint) float64 {
	best := math.MaxFloat64

	n := len(r.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if d := pointToSegmentKm(p, r.vertices[j], r.vertices[i]); d < best {
			best = d
		}
	}

	return best
}

// BoundingBox returns the ring's axis-aligned bounds (minLat, minLon, maxLat, maxLon).
func (r Ring) BoundingBox() (minLat, minLon, maxLat, maxLon float64) {
	minLat, minLon = math.MaxFloat64, math.MaxFloat64
	maxLat, maxLon = -math.MaxFloat64, -math.MaxFloat64

	for _, v := range r.vertices {
		minLat = math.Min(minLat, v.Latitude())
		maxLat = math.Max(maxLat, v.Latitude())
		minLon = math.Min(minLon, v.Longitude())
		maxLon = math.Max(maxLon, v.Longitude())
	}
	return minLat, minLon, maxLat, maxLon
}

// Intersects reports whether r and other overlap in any way: partial edge
// crossing, r fully inside other, or other fully inside r.
func (r Ring) Intersects(other Ring) bool {
	for _, v := range r.vertices {
		if other.Contains(v) {
			return true
		}
	}
	for _, v := range other.vertices {
		if r.Contains(v) {
			return true
		}
	}

	n, m := len(r.vertices), len(other.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		for k, l := 0, m-1; k < m; l, k = k, k+1 {
			if segmentsCross(r.vertices[j], r.vertices[i], other.vertices[l], other.vertices[k]) {
				return true
			}
		}
	}

	return false
}

// OverlapFraction measures how much of r's own area lies inside other, as a
// fraction in [0,1]. The area ratio is estimated by uniform grid sampling
// over r's bounding box, which is deterministic and handles concave rings.
func (r Ring) OverlapFraction(other Ring) float64 {
	minLat, minLon, maxLat, maxLon := r.BoundingBox()
	latStep := (maxLat - minLat) / overlapGridSize
	lonStep := (maxLon - minLon) / overlapGridSize
	if latStep == 0 || lonStep == 0 {
		return 0
	}

	inSelf, inBoth := 0, 0
	for i := 0; i < overlapGridSize; i++ {
		for j := 0; j < overlapGridSize; j++ {
			lat := minLat + (float64(i)+0.5)*latStep
			lon := minLon + (float64(j)+0.5)*lonStep

			sample, err := kernel.NewGeoPoint(lat, lon)
			if err != nil {
				continue
			}
			if !r.Contains(sample) {
				continue
			}
			inSelf++
			if other.Contains(sample) {
				inBoth++
			}
		}
	}

	if inSelf == 0 {
		return 0
	}
	return float64(inBoth) / float64(inSelf)
}

// pointToSegmentKm computes the distance from p to the segment (a, b) in km.
// Coordinates are projected onto a plane where one unit is one kilometer,
// with longitude scaled by the cosine of the point's latitude.
func pointToSegmentKm(p, a, b kernel.GeoPoint) float64 {
	lonScale := kmPerDegreeLat * math.Cos(p.Latitude()*math.Pi/180)

	px, py := p.Longitude()*lonScale, p.Latitude()*kmPerDegreeLat
	ax, ay := a.Longitude()*lonScale, a.Latitude()*kmPerDegreeLat
	bx, by := b.Longitude()*lonScale, b.Latitude()*kmPerDegreeLat

	dx, dy := bx-ax, by-ay
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// segmentsCross reports whether segments (a1,a2) and (b1,b2) properly intersect.
func segmentsCross(a1, a2, b1, b2 kernel.GeoPoint) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross computes the z-component of (b-a) x (p-a) in coordinate space.
func cross(a, b, p kernel.GeoPoint) float64 {
	return (b.Longitude()-a.Longitude())*(p.Latitude()-a.Latitude()) -
		(b.Latitude()-a.Latitude())*(p.Longitude()-a.Longitude())
}
