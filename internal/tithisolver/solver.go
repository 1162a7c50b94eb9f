// Package tithisolver implements the tithi-boundary root-finder that the
// vrata resolver uses to locate ekādaśī, daśamī, dvādaśī, and trayodaśī
// starts.
package tithisolver

import (
	"math"

	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/tithi"
)

// meanTithiLengthDays is the average duration of one tithi (one 12°
// slice of moon-minus-sun longitude), used as the fixed-point iteration's
// approximate Jacobian (spec §4.2). Actual tithi length varies roughly
// ±10% around this mean.
const meanTithiLengthDays = (23.0 + 37.0/60.0) / 24.0

// maxIterations bounds the fixed-point search; exceeding it means the
// iteration has stagnated on pathological input rather than converged.
const maxIterations = 1000

// FindTithiStart locates the nearest instant at or after from at which
// the tithi equals target.
//
// If the forward delta from the tithi at from to target is itself
// ambiguous (≥ 15, i.e. more than half a cycle away under the half-cycle
// symmetry of "target or target+15"), the search is retargeted to the
// nearer of the two tithis 15 units (180°) apart, per spec §4.2 step 2.
func FindTithiStart(ephem ephemeris.Ephemeris, from juldays.JulDaysUT, target tithi.Tithi) (juldays.JulDaysUT, error) {
	startTithi, err := ephem.Tithi(from)
	if err != nil {
		return 0, err
	}

	delta0 := startTithi.PositiveDeltaUntil(target)
	if delta0 >= 15 {
		target = target.Add(15)
		delta0 -= 15
	}

	t := from.Add(juldays.FractionalDays(delta0 * meanTithiLengthDays))

	prevAbsDelta := math.Inf(1)
	for i := 0; i < maxIterations; i++ {
		current, err := ephem.Tithi(t)
		if err != nil {
			return 0, err
		}

		delta := current.DeltaToNearest(target)
		absDelta := math.Abs(delta)

		// Non-decreasing |Δ| means we've hit floating-point stagnation
		// at the root; that is the legitimate exit, not a tolerance
		// check.
		if absDelta >= prevAbsDelta {
			return t, nil
		}
		prevAbsDelta = absDelta

		t = t.Add(juldays.FractionalDays(delta * meanTithiLengthDays))
	}

	return 0, ephemeris.CantFindTithiAfter(target, from)
}
