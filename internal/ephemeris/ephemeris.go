// Package ephemeris adapts the meeus and go-sunrise astronomical
// libraries to the narrow capability set the vrata resolver needs: sun
// and moon longitude, tithi, and sunrise/sunset search. It is the single
// point of contact with "the ephemeris back-end" that spec.md treats as
// an external collaborator.
package ephemeris

import (
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/tithi"
)

// Ephemeris is the capability set a vrata resolver needs from an
// astronomical back-end. Implementations may fail at extreme latitudes
// or on pathological input; every method returns a typed error rather
// than panicking.
//
// Implementations are not required to be safe for concurrent use from
// multiple goroutines — each concurrent worker should own its own
// Ephemeris handle (spec §5).
type Ephemeris interface {
	// SunLongitude returns the true ecliptic longitude of the sun (no
	// nutation or aberration correction), in degrees, at t.
	SunLongitude(t juldays.JulDaysUT) (float64, error)

	// MoonLongitude returns the geocentric ecliptic longitude of the
	// moon, in degrees, at t.
	MoonLongitude(t juldays.JulDaysUT) (float64, error)

	// Tithi returns the lunar tithi at t.
	Tithi(t juldays.JulDaysUT) (tithi.Tithi, error)

	// FindSunrise returns the first sunrise strictly after after, at the
	// given latitude/longitude (degrees, east-positive), under the
	// horizon-crossing definition selected by flags.
	FindSunrise(after juldays.JulDaysUT, lat, lon float64, flags CalcFlags) (juldays.JulDaysUT, error)

	// FindSunset returns the first sunset strictly after after.
	FindSunset(after juldays.JulDaysUT, lat, lon float64, flags CalcFlags) (juldays.JulDaysUT, error)
}
