// Package almanac computes sunrise and sunset for an observer on the WGS84
// ellipsoid. Times are returned in UTC.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// DefaultElevation is the observer elevation in metres used when none is given.
const DefaultElevation = 914

var (
	ErrInvalidCoordinates = errors.New("almanac: invalid coordinates")
	ErrNoSunriseSunset    = errors.New("almanac: sun does not rise or set on this day")
)

// Observer is a location in decimal degrees (north and east positive) with an
// elevation in metres above the ellipsoid.
type Observer struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// NewObserver returns an observer at DefaultElevation.
func NewObserver(lat, lon float64) Observer {
	return Observer{Latitude: lat, Longitude: lon, Elevation: DefaultElevation}
}

// Validate checks the coordinate ranges.
func (o Observer) Validate() error {
	switch {
	case math.IsNaN(o.Latitude) || o.Latitude < -90 || o.Latitude > 90:
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, o.Latitude)
	case math.IsNaN(o.Longitude) || o.Longitude < -180 || o.Longitude > 180:
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, o.Longitude)
	case math.IsNaN(o.Elevation) || math.IsInf(o.Elevation, 0) || o.Elevation < -500:
		return fmt.Errorf("%w: elevation %v", ErrInvalidCoordinates, o.Elevation)
	}
	return nil
}

// SunriseSunset returns the UTC instants at which the sun's upper limb crosses
// the horizon (apparent altitude -0.833 degrees) on the UTC calendar day of
// day. The elevation is validated but does not depress the horizon.
func SunriseSunset(o Observer, day time.Time) (rise, set time.Time, err error) {
	if err := o.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := day.UTC().Date()
	rise, set = sunrise.SunriseSunset(o.Latitude, o.Longitude, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d at %.4f,%.4f",
			ErrNoSunriseSunset, y, int(m), d, o.Latitude, o.Longitude)
	}
	return rise.UTC(), set.UTC(), nil
}

// DayLength returns the time between sunrise and sunset.
func DayLength(o Observer, day time.Time) (time.Duration, error) {
	rise, set, err := SunriseSunset(o, day)
	if err != nil {
		return 0, err
	}
	return set.Sub(rise), nil
}

// SolarNoon returns the midpoint between sunrise and sunset.
func SolarNoon(o Observer, day time.Time) (time.Time, error) {
	rise, set, err := SunriseSunset(o, day)
	if err != nil {
		return time.Time{}, err
	}
	return rise.Add(set.Sub(rise) / 2), nil
}
