package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the Haversine formula.
	earthRadiusKm = 6371.0088

	degToRad = math.Pi / 180
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS-84 coordinate with validated latitude and longitude.
// GeoPoint is an immutable value object; the zero value is invalid and will fail
// validation - use NewGeoPoint to create instances.
//
// Coordinates outside [-90,90] latitude or [-180,180] longitude are rejected at
// construction time, before any spatial query could be issued with them.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("point: %s", point) // Output: GeoPoint(12.971600,77.594600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]. Returns an error if either coordinate is
// outside its valid bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(lat), p.setLongitude(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lon
}

// String returns a human-readable string representation of the GeoPoint.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceKm calculates the great-circle distance to another point in kilometers
// using the Haversine formula on a spherical earth model.
// Both points must be properly constructed for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return haversineKm(p.lat, p.lon, other.lat, other.lon), nil
}

// haversineKm computes the great-circle distance between two coordinate pairs in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// The private setters enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(lon float64) error {
	if lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}

	p.lon = lon
	return nil
}
