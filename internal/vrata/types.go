// Package vrata implements the core of this repository: resolving the
// next ekādaśī fasting day for a location, classifying it, and deriving
// its pāraṇam window.
package vrata

import (
	"time"

	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/paran"
)

// Type is the closed set of vrata classifications (spec §3).
type Type int

const (
	Ekadashi Type = iota
	WithAtiriktaEkadashi
	WithAtiriktaDvadashi
	SandigdhaEkadashi
	SandigdhaAtiriktaEkadashi
	SandigdhaWithAtiriktaDvadashi
)

func (t Type) String() string {
	switch t {
	case Ekadashi:
		return "ekadashi"
	case WithAtiriktaEkadashi:
		return "with_atirikta_ekadashi"
	case WithAtiriktaDvadashi:
		return "with_atirikta_dvadashi"
	case SandigdhaEkadashi:
		return "sandigdha_ekadashi"
	case SandigdhaAtiriktaEkadashi:
		return "sandigdha_atirikta_ekadashi"
	case SandigdhaWithAtiriktaDvadashi:
		return "sandigdha_with_atirikta_dvadashi"
	default:
		return "unknown"
	}
}

// Location is a named geographic point with an IANA timezone identifier.
type Location struct {
	Name             string
	Latitude         float64
	Longitude        float64
	TimeZone         string
	LatitudeAdjusted bool
}

// Zone resolves the location's IANA timezone.
func (l Location) Zone() (*time.Location, error) {
	return time.LoadLocation(l.TimeZone)
}

// VrataTimePoints holds the night's reference instants and the four
// tithi-boundary instants the resolver located (spec §3).
type VrataTimePoints struct {
	Sunset0  juldays.JulDaysUT
	Sunrise1 juldays.JulDaysUT

	Ativrddha juldays.JulDaysUT // 54gh40v
	Vrddha    juldays.JulDaysUT // 55gh
	Samyam    juldays.JulDaysUT // 55gh50v
	Hrasa     juldays.JulDaysUT // 55gh55v
	Arunodaya juldays.JulDaysUT

	DashamiStart    juldays.JulDaysUT
	EkadashiStart   juldays.JulDaysUT
	DvadashiStart   juldays.JulDaysUT
	TrayodashiStart juldays.JulDaysUT
}

// Vrata is the resolved fasting observance: its classification, the
// sunrises/sunsets that bracket it, the night's reference instants, and
// its pāraṇam window.
type Vrata struct {
	Type     Type
	Date     juldays.CivilDate
	Location Location

	// Sunrise0 is set only when a purva-viddha postponement (spec §4.3
	// Phase C) shifted the fast away from this sunrise.
	Sunrise0 *juldays.JulDaysUT
	Sunrise1 juldays.JulDaysUT
	Sunrise2 juldays.JulDaysUT
	// Sunrise3 is set only for atiriktā (two-day) fasts.
	Sunrise3 *juldays.JulDaysUT

	Sunset0 juldays.JulDaysUT
	Sunset1 *juldays.JulDaysUT
	Sunset2 *juldays.JulDaysUT
	Sunset3 *juldays.JulDaysUT

	Times VrataTimePoints
	Paran paran.Paran
}
