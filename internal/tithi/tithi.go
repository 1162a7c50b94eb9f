// Package tithi implements the angular lunar-day arithmetic that the
// solver and resolver are built on: a tithi is a 12°-wide slice of
// (moon longitude − sun longitude).
package tithi

import "math"

// Tithi is a fractional angular phase in [0, 30), in units of 12°.
type Tithi float64

// Named tithi boundaries (spec §3).
const (
	Dashami     Tithi = 9
	Ekadashi    Tithi = 10
	Dvadashi    Tithi = 11
	DvadashiEnd Tithi = 12
	Trayodashi  Tithi = 12
)

// Normalise reduces v into [0, 30).
func Normalise(v float64) Tithi {
	v = math.Mod(v, 30)
	if v < 0 {
		v += 30
	}
	return Tithi(v)
}

// FromLongitudes computes the tithi at the instant whose moon and sun
// ecliptic longitudes (in degrees) are given.
func FromLongitudes(moonLongitudeDeg, sunLongitudeDeg float64) Tithi {
	return Normalise((moonLongitudeDeg - sunLongitudeDeg) / 12)
}

// DeltaToNearest returns the signed shortest delta from t to target, in
// (-15, +15]. Ties at exactly ±15 resolve to +15, keeping the tithi
// solver's search forward-biased (spec §4.1 edge policy).
func (t Tithi) DeltaToNearest(target Tithi) float64 {
	d := math.Mod(float64(target-t), 30)
	if d <= -15 {
		d += 30
	} else if d > 15 {
		d -= 30
	}
	if d == -15 {
		d = 15
	}
	return d
}

// PositiveDeltaUntil returns the non-negative forward delta from t to
// target, in [0, 30).
func (t Tithi) PositiveDeltaUntil(target Tithi) float64 {
	d := math.Mod(float64(target-t), 30)
	if d < 0 {
		d += 30
	}
	return d
}

// Add returns t shifted forward by delta degrees-of-tithi, mod 30.
func (t Tithi) Add(delta float64) Tithi {
	return Normalise(float64(t) + delta)
}

// IsDashami reports whether t falls within the daśamī tithi, [9, 10).
func (t Tithi) IsDashami() bool {
	return t >= Dashami && t < Ekadashi
}

// IsEkadashi reports whether t falls within the ekādaśī tithi, [10, 11).
func (t Tithi) IsEkadashi() bool {
	return t >= Ekadashi && t < Dvadashi
}

// IsDvadashi reports whether t falls within the dvādaśī tithi, [11, 12).
func (t Tithi) IsDvadashi() bool {
	return t >= Dvadashi && t < DvadashiEnd
}
