// Package juldays provides the fractional Julian-day-UT scalar that every
// astronomical computation in this repository is expressed in terms of.
package juldays

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// JulDaysUT is a fractional-days scalar referenced to Universal Time.
// It is the common currency between the ephemeris adapter, the tithi
// solver, and the vrata resolver.
type JulDaysUT float64

// FractionalDays is a duration expressed in days.
type FractionalDays float64

// FractionalHours is a duration expressed in hours.
type FractionalHours float64

// ToDays converts an hour duration to a day duration.
func (h FractionalHours) ToDays() FractionalDays {
	return FractionalDays(float64(h) / 24)
}

// Add advances t by d days.
func (t JulDaysUT) Add(d FractionalDays) JulDaysUT {
	return t + JulDaysUT(d)
}

// AddHours advances t by h hours.
func (t JulDaysUT) AddHours(h FractionalHours) JulDaysUT {
	return t.Add(h.ToDays())
}

// Sub returns the signed difference t - u in days.
func (t JulDaysUT) Sub(u JulDaysUT) FractionalDays {
	return FractionalDays(t - u)
}

// equalEpsilon is the tolerance (in days) within which two JulDaysUT
// values are considered equal: roughly 86 milliseconds.
const equalEpsilon = 1e-6

// Equal reports whether t and u are within equalEpsilon days of each other.
func (t JulDaysUT) Equal(u JulDaysUT) bool {
	d := float64(t - u)
	if d < 0 {
		d = -d
	}
	return d <= equalEpsilon
}

// Before reports whether t is strictly before u, outside the equality
// tolerance.
func (t JulDaysUT) Before(u JulDaysUT) bool {
	return !t.Equal(u) && t < u
}

// After reports whether t is strictly after u, outside the equality
// tolerance.
func (t JulDaysUT) After(u JulDaysUT) bool {
	return !t.Equal(u) && t > u
}

// FromTime converts a civil time.Time (any zone) to JulDaysUT.
func FromTime(t time.Time) JulDaysUT {
	return JulDaysUT(julian.TimeToJD(t))
}

// ToUTC converts a JulDaysUT to a time.Time in UTC.
func ToUTC(t JulDaysUT) time.Time {
	return julian.JDToTime(float64(t)).UTC()
}

// InLocation converts a JulDaysUT to a time.Time expressed in loc's wall
// clock.
func InLocation(t JulDaysUT, loc *time.Location) time.Time {
	return ToUTC(t).In(loc)
}

// CivilDate is a timezone-naive calendar date (year, month, day), used as
// the resolver's "after" input and as a Vrata's reported date.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf returns the civil date of t in loc's timezone.
func CivilDateOf(t JulDaysUT, loc *time.Location) CivilDate {
	wall := InLocation(t, loc)
	return CivilDate{Year: wall.Year(), Month: wall.Month(), Day: wall.Day()}
}

// Before reports whether c is strictly earlier than d.
func (c CivilDate) Before(d CivilDate) bool {
	ct := time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC)
	dt := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return ct.Before(dt)
}

// AddDays returns c shifted by n calendar days.
func (c CivilDate) AddDays(n int) CivilDate {
	t := time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// MidnightUT returns the JulDaysUT instant of 00:00 UT on the calendar date
// c, adjusted by -longitude/360 days to approximate "astronomical
// midnight" at the given longitude (spec §4.3 preparation step).
func (c CivilDate) MidnightUT(longitude float64) JulDaysUT {
	midnight := time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC)
	return FromTime(midnight).Add(FractionalDays(-longitude / 360))
}

// String renders the civil date as YYYY-MM-DD.
func (c CivilDate) String() string {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// ParseCivilDate parses a YYYY-MM-DD string into a CivilDate.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}
