package servicearea_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/servicearea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

// square builds a rectangular ring from south-west to north-east corner.
func square(t *testing.T, swLat, swLon, neLat, neLon float64) servicearea.Ring {
	t.Helper()
	ring, err := servicearea.NewRing([]kernel.GeoPoint{
		point(t, swLat, swLon),
		point(t, swLat, neLon),
		point(t, neLat, neLon),
		point(t, neLat, swLon),
	})
	require.NoError(t, err)
	return ring
}

func TestNewRing(t *testing.T) {
	t.Run("should require at least three vertices", func(t *testing.T) {
		_, err := servicearea.NewRing([]kernel.GeoPoint{
			point(t, 12.9, 77.5),
			point(t, 12.9, 77.7),
		})

		require.Error(t, err)
		assert.Equal(t, servicearea.ErrRingTooSmall, err)
	})

	t.Run("should reject unconstructed vertices", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := servicearea.NewRing([]kernel.GeoPoint{
			point(t, 12.9, 77.5),
			zero,
			point(t, 13.0, 77.7),
		})

		require.Error(t, err)
	})
}

func TestRing_Contains(t *testing.T) {
	ring := square(t, 12.80, 77.50, 13.00, 77.70)

	t.Run("should contain interior points", func(t *testing.T) {
		assert.True(t, ring.Contains(point(t, 12.90, 77.60)))
		assert.True(t, ring.Contains(point(t, 12.81, 77.51)))
	})

	t.Run("should exclude exterior points", func(t *testing.T) {
		assert.False(t, ring.Contains(point(t, 13.10, 77.60))) // north of the ring
		assert.False(t, ring.Contains(point(t, 12.90, 77.80))) // east of the ring
		assert.False(t, ring.Contains(point(t, 12.70, 77.40))) // south-west
	})

	t.Run("should handle concave rings", func(t *testing.T) {
		// A "U" shape open to the north: the notch between the arms is outside.
		concave, err := servicearea.NewRing([]kernel.GeoPoint{
			point(t, 10.0, 20.0),
			point(t, 10.0, 26.0),
			point(t, 14.0, 26.0),
			point(t, 14.0, 24.0),
			point(t, 11.0, 24.0),
			point(t, 11.0, 22.0),
			point(t, 14.0, 22.0),
			point(t, 14.0, 20.0),
		})
		require.NoError(t, err)

		assert.True(t, concave.Contains(point(t, 10.5, 23.0)))  // base of the U
		assert.True(t, concave.Contains(point(t, 13.0, 21.0)))  // west arm
		assert.False(t, concave.Contains(point(t, 13.0, 23.0))) // notch
	})
}

func TestRing_DistanceKm(t *testing.T) {
	ring := square(t, 12.80, 77.50, 13.00, 77.70)

	t.Run("should measure distance to nearest edge", func(t *testing.T) {
		// 0.1 degrees of latitude north of the top edge is ~11.1km.
		d := ring.DistanceKm(point(t, 13.10, 77.60))
		assert.InDelta(t, 11.1, d, 0.2)
	})

	t.Run("should be near zero for a point close to the boundary", func(t *testing.T) {
		d := ring.DistanceKm(point(t, 12.999, 77.60))
		assert.Less(t, d, 0.2)
	})
}

func TestRing_Intersects(t *testing.T) {
	base := square(t, 12.80, 77.50, 13.00, 77.70)

	t.Run("should detect partial overlap", func(t *testing.T) {
		overlapping := square(t, 12.90, 77.60, 13.10, 77.80)
		assert.True(t, base.Intersects(overlapping))
		assert.True(t, overlapping.Intersects(base))
	})

	t.Run("should detect full containment", func(t *testing.T) {
		inner := square(t, 12.85, 77.55, 12.95, 77.65)
		assert.True(t, base.Intersects(inner))
		assert.True(t, inner.Intersects(base)) // enclosure seen from the small ring
	})

	t.Run("should report no intersection for disjoint rings", func(t *testing.T) {
		faraway := square(t, 20.00, 70.00, 21.00, 71.00)
		assert.False(t, base.Intersects(faraway))
	})

	t.Run("should detect edge crossing without contained vertices", func(t *testing.T) {
		// A tall narrow ring crossing the base ring vertically: its vertices are
		// all outside the base, and the base's vertices are outside it.
		crossing := square(t, 12.70, 77.58, 13.10, 77.62)
		assert.True(t, base.Intersects(crossing))
	})
}

func TestRing_OverlapFraction(t *testing.T) {
	base := square(t, 12.80, 77.50, 13.00, 77.70)

	t.Run("should report full overlap when contained", func(t *testing.T) {
		inner := square(t, 12.85, 77.55, 12.95, 77.65)
		assert.InDelta(t, 1.0, inner.OverlapFraction(base), 0.02)
	})

	t.Run("should report partial overlap proportional to shared area", func(t *testing.T) {
		// One third of this ring's longitude span falls inside the base ring.
		partial := square(t, 12.80, 77.60, 13.00, 77.90)
		got := partial.OverlapFraction(base)
		assert.InDelta(t, 0.33, got, 0.03)
	})

	t.Run("should report zero for disjoint rings", func(t *testing.T) {
		faraway := square(t, 20.00, 70.00, 21.00, 71.00)
		assert.Zero(t, base.OverlapFraction(faraway))
	})
}
