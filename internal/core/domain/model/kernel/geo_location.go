package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean radius of the Earth used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoLocationIsNotConstructed is returned when attempting to use an improperly
// initialized GeoLocation. GeoLocations must be created via NewGeoLocation.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation constructor")

// GeoLocation represents a geographic point with validated coordinates and an
// optional human-readable address. It is an immutable value object; the zero
// value is invalid and will fail validation.
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(55.751244, 37.618423, "Moscow")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", loc) // Output: GeoLocation(55.751244,37.618423)
type GeoLocation struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewGeoLocation creates a GeoLocation with the specified coordinates.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]; the address is free-form and may be empty.
//
// Returns:
//   - GeoLocation: A valid location instance
//   - error: Out-of-range error if either coordinate is outside valid bounds
func NewGeoLocation(latitude, longitude float64, address string) (GeoLocation, error) {
	loc := GeoLocation{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate checks if the GeoLocation was properly constructed via NewGeoLocation.
// The zero value is invalid and fails this validation.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l GeoLocation) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l GeoLocation) Longitude() float64 {
	return l.longitude
}

// Address returns the optional human-readable address for the point.
func (l GeoLocation) Address() string {
	return l.address
}

// String returns a representation of the form "GeoLocation(lat,lng)".
// This method implements the fmt.Stringer interface.
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two locations by coordinates, ignoring the address.
// Both locations must be properly constructed for the comparison to succeed.
func (l GeoLocation) IsEqual(other GeoLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two
// locations using the haversine formula. Both locations must be properly
// constructed for the calculation to succeed.
func (l GeoLocation) DistanceTo(other GeoLocation) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := l.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - l.latitude) * math.Pi / 180
	dLng := (other.longitude - l.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude validates and sets the latitude.
func (l *GeoLocation) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

// setLongitude validates and sets the longitude.
func (l *GeoLocation) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
