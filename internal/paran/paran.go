// Package paran computes the pāraṇam (fast-breaking) interval and its
// sub-type, given the key moments the vrata resolver has already located.
package paran

import (
	"time"

	"github.com/zapponejosh/vrata-api/internal/juldays"
)

// Type is the closed set of pāraṇam sub-types (spec §3, §4.4).
type Type int

const (
	Standard Type = iota
	FromQuarterDvadashi
	PucchaDvadashi
)

func (t Type) String() string {
	switch t {
	case Standard:
		return "standard"
	case FromQuarterDvadashi:
		return "from_quarter_dvadashi"
	case PucchaDvadashi:
		return "puccha_dvadashi"
	default:
		return "unknown"
	}
}

// Paran is the computed fast-breaking window.
type Paran struct {
	Type  Type
	Start *juldays.JulDaysUT // set for every type; FromQuarterDvadashi has no upper bound, so only End is nil
	End   *juldays.JulDaysUT
}

// Points are the instants the paran computation needs, already located
// by the resolver.
type Points struct {
	// Sunrise and sunset of the pāraṇam day: sunrise₂/sunset₂ for a
	// single-day fast, sunrise₃/sunset₃ for an atiriktā fast.
	Sunrise juldays.JulDaysUT
	Sunset  juldays.JulDaysUT

	DvadashiStart juldays.JulDaysUT
	DvadashiEnd   juldays.JulDaysUT

	// Atirikta indicates a two-day fast, which collapses the three
	// top-down rules into the two described in spec §4.4's last
	// paragraph.
	Atirikta bool
}

// Compute derives the pāraṇam interval and sub-type from already-located
// key moments, implementing the rules of spec §4.4.
func Compute(p Points) Paran {
	oneFifth := p.Sunrise.Add(p.Sunset.Sub(p.Sunrise) * 0.2)
	dvadashiQuarter := p.DvadashiStart.Add(p.DvadashiEnd.Sub(p.DvadashiStart) * 0.25)

	if p.Atirikta {
		if oneFifth.Before(p.DvadashiEnd) {
			return standard(p.Sunrise, oneFifth)
		}
		return puccha(p.Sunrise, p.DvadashiEnd)
	}

	switch {
	case p.Sunrise.Before(dvadashiQuarter):
		start := dvadashiQuarter
		return Paran{Type: FromQuarterDvadashi, Start: &start}

	case (p.Sunrise.Before(p.DvadashiEnd) || p.Sunrise.Equal(p.DvadashiEnd)) && p.DvadashiEnd.Before(oneFifth):
		return puccha(p.Sunrise, p.DvadashiEnd)

	default:
		return standard(p.Sunrise, oneFifth)
	}
}

func standard(start, end juldays.JulDaysUT) Paran {
	return Paran{Type: Standard, Start: &start, End: &end}
}

func puccha(start, end juldays.JulDaysUT) Paran {
	return Paran{Type: PucchaDvadashi, Start: &start, End: &end}
}

// Rounded is a Paran rendered to civil wall-clock time in a timezone,
// for presentation. Start rounds up, end rounds down; both use minute
// granularity unless the resulting interval would be under five
// minutes, in which case seconds are used (spec §4.4 "Rounding for
// presentation").
type Rounded struct {
	Type  Type
	Start *time.Time
	End   *time.Time
}

// Round renders p into civil wall-clock time in loc.
func Round(p Paran, loc *time.Location) Rounded {
	useSeconds := false
	if p.Start != nil && p.End != nil {
		if p.End.Sub(*p.Start) < juldays.FractionalDays(5.0/1440.0) {
			useSeconds = true
		}
	}

	r := Rounded{Type: p.Type}
	if p.Start != nil {
		t := roundCivil(*p.Start, loc, true, useSeconds)
		r.Start = &t
	}
	if p.End != nil {
		t := roundCivil(*p.End, loc, false, useSeconds)
		r.End = &t
	}
	return r
}

func roundCivil(t juldays.JulDaysUT, loc *time.Location, roundUp, useSeconds bool) time.Time {
	wall := juldays.InLocation(t, loc)

	unit := time.Minute
	if useSeconds {
		unit = time.Second
	}

	rounded := wall.Truncate(unit)
	if roundUp && !rounded.Equal(wall) {
		rounded = rounded.Add(unit)
	}
	return rounded
}
