package ephemeris

import (
	"errors"
	"fmt"

	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/tithi"
)

// CalcErrorKind is the closed set of ways an astronomical or registry
// lookup can fail (spec §3, §7).
type CalcErrorKind int

const (
	KindCantFindSunriseAfter CalcErrorKind = iota
	KindCantFindSunsetAfter
	KindCantFindTithiAfter
	KindCantFindLocation
	KindPotentialEternalLoop
)

// CalcError is the typed error value returned in place of a result
// whenever an ephemeris or registry lookup fails. It is never a panic or
// exception; callers branch on Kind.
type CalcError struct {
	Kind     CalcErrorKind
	At       juldays.JulDaysUT
	Target   tithi.Tithi
	Location string
}

func (e *CalcError) Error() string {
	switch e.Kind {
	case KindCantFindSunriseAfter:
		return fmt.Sprintf("cannot find sunrise after jd %v", float64(e.At))
	case KindCantFindSunsetAfter:
		return fmt.Sprintf("cannot find sunset after jd %v", float64(e.At))
	case KindCantFindTithiAfter:
		return fmt.Sprintf("cannot find tithi %v after jd %v", e.Target, float64(e.At))
	case KindCantFindLocation:
		return fmt.Sprintf("cannot find location %q", e.Location)
	case KindPotentialEternalLoop:
		return fmt.Sprintf("potential eternal loop detected: %s", e.Location)
	default:
		return "unknown calc error"
	}
}

// CantFindSunriseAfter reports that no sunrise could be located after t.
func CantFindSunriseAfter(t juldays.JulDaysUT) error {
	return &CalcError{Kind: KindCantFindSunriseAfter, At: t}
}

// CantFindSunsetAfter reports that no sunset could be located after t.
func CantFindSunsetAfter(t juldays.JulDaysUT) error {
	return &CalcError{Kind: KindCantFindSunsetAfter, At: t}
}

// CantFindTithiAfter reports that the boundary solver's iteration cap was
// exceeded while searching for target after t.
func CantFindTithiAfter(target tithi.Tithi, t juldays.JulDaysUT) error {
	return &CalcError{Kind: KindCantFindTithiAfter, Target: target, At: t}
}

// CantFindLocation reports that the location registry has no entry named
// name.
func CantFindLocation(name string) error {
	return &CalcError{Kind: KindCantFindLocation, Location: name}
}

// PotentialEternalLoop reports that a resolver guard (Phase C's
// ativṛddhādi postponement, or Phase D's date-sanity restart) fired a
// second time in a single resolution, which spec §7 treats as a fatal
// diagnostic rather than a further retry. detail names which guard.
func PotentialEternalLoop(detail string) error {
	return &CalcError{Kind: KindPotentialEternalLoop, Location: detail}
}

// AsCalcError extracts the *CalcError wrapped in err, if any.
func AsCalcError(err error) (*CalcError, bool) {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCantFindSunrise reports whether err is a CantFindSunriseAfter error.
func IsCantFindSunrise(err error) bool {
	ce, ok := AsCalcError(err)
	return ok && ce.Kind == KindCantFindSunriseAfter
}

// IsCantFindSunset reports whether err is a CantFindSunsetAfter error.
func IsCantFindSunset(err error) bool {
	ce, ok := AsCalcError(err)
	return ok && ce.Kind == KindCantFindSunsetAfter
}

// IsCantFindTithi reports whether err is a CantFindTithiAfter error.
func IsCantFindTithi(err error) bool {
	ce, ok := AsCalcError(err)
	return ok && ce.Kind == KindCantFindTithiAfter
}

// IsCantFindLocation reports whether err is a CantFindLocation error.
func IsCantFindLocation(err error) bool {
	ce, ok := AsCalcError(err)
	return ok && ce.Kind == KindCantFindLocation
}

// IsSunriseOrSunsetError reports whether err originates from a failed
// horizon-crossing search, as opposed to a tithi-solver or registry
// failure. Used by the latitude-fallback wrapper (spec §4.5).
func IsSunriseOrSunsetError(err error) bool {
	return IsCantFindSunrise(err) || IsCantFindSunset(err)
}
