package ephemeris

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/tithi"
)

// maxPolarSearchDays bounds how many civil days a sunrise/sunset search
// walks forward before giving up. At 66°+ latitude a solstice can hide
// the event for weeks; the caller (the latitude-fallback wrapper) is
// expected to retry with a less extreme latitude rather than this search
// walking indefinitely.
const maxPolarSearchDays = 200

// obliquityOfEclipticDeg is the mean obliquity of the ecliptic at J2000,
// good to within the same order of accuracy as the rest of this adapter's
// disc-center horizon search.
const obliquityOfEclipticDeg = 23.4392911

// Meeus is the production Ephemeris: sun and moon longitudes come from
// the meeus library's low-precision periodic series, and the disc-edge
// sunrise/sunset definition comes from go-sunrise. The disc-center
// definition is computed directly from the sun's declination so that it
// shares the same longitude source as the tithi calculation.
type Meeus struct{}

// NewMeeus constructs the production Ephemeris implementation.
func NewMeeus() Meeus {
	return Meeus{}
}

// SunLongitude implements Ephemeris.
func (Meeus) SunLongitude(t juldays.JulDaysUT) (float64, error) {
	T := base.J2000Century(float64(t))
	lon, _ := solar.True(T)
	return lon.Deg(), nil
}

// MoonLongitude implements Ephemeris.
func (Meeus) MoonLongitude(t juldays.JulDaysUT) (float64, error) {
	lon, _, _ := moonposition.Position(float64(t))
	return lon.Deg(), nil
}

// Tithi implements Ephemeris.
func (m Meeus) Tithi(t juldays.JulDaysUT) (tithi.Tithi, error) {
	sunLon, err := m.SunLongitude(t)
	if err != nil {
		return 0, err
	}
	moonLon, err := m.MoonLongitude(t)
	if err != nil {
		return 0, err
	}
	return tithi.FromLongitudes(moonLon, sunLon), nil
}

// FindSunrise implements Ephemeris.
func (m Meeus) FindSunrise(after juldays.JulDaysUT, lat, lon float64, flags CalcFlags) (juldays.JulDaysUT, error) {
	if flags.Has(SunriseByDiscEdge) {
		return m.findViaGoSunrise(after, lat, lon, true)
	}
	return m.findViaDeclination(after, lat, lon, true)
}

// FindSunset implements Ephemeris.
func (m Meeus) FindSunset(after juldays.JulDaysUT, lat, lon float64, flags CalcFlags) (juldays.JulDaysUT, error) {
	if flags.Has(SunriseByDiscEdge) {
		return m.findViaGoSunrise(after, lat, lon, false)
	}
	return m.findViaDeclination(after, lat, lon, false)
}

// findViaGoSunrise walks forward day by day using go-sunrise's refraction-
// and semi-diameter-corrected horizon crossing (the "disc upper edge"
// definition). go-sunrise reports a zero time.Time when the sun neither
// rises nor sets on a given civil day (polar day/night), which this walk
// treats as "try the next day".
func (m Meeus) findViaGoSunrise(after juldays.JulDaysUT, lat, lon float64, rising bool) (juldays.JulDaysUT, error) {
	start := juldays.ToUTC(after)

	for dayOffset := 0; dayOffset < maxPolarSearchDays; dayOffset++ {
		d := start.AddDate(0, 0, dayOffset)
		rise, set := sunrise.SunriseSunset(lat, lon, d.Year(), d.Month(), d.Day())

		candidate := rise
		if !rising {
			candidate = set
		}
		if candidate.IsZero() {
			continue
		}

		jd := juldays.FromTime(candidate)
		if jd.After(after) {
			return jd, nil
		}
	}

	if rising {
		return 0, CantFindSunriseAfter(after)
	}
	return 0, CantFindSunsetAfter(after)
}

// findViaDeclination walks forward day by day, each day computing the
// sun's declination from SunLongitude at local solar noon and solving the
// hour-angle equation for a zero-altitude (disc-center) horizon crossing.
// |cos(H)| > 1 means the sun doesn't reach the horizon that day (polar
// day or polar night), and the walk tries the next day.
func (m Meeus) findViaDeclination(after juldays.JulDaysUT, lat, lon float64, rising bool) (juldays.JulDaysUT, error) {
	latRad := lat * math.Pi / 180
	civilStart := juldays.FromTime(juldays.ToUTC(after).Truncate(24 * time.Hour))

	for dayOffset := 0; dayOffset < maxPolarSearchDays; dayOffset++ {
		midnight := civilStart.Add(juldays.FractionalDays(dayOffset))
		// Approximate local solar noon; the equation of time (a few
		// minutes) is within the tolerance this adapter is meant to
		// achieve for tithi-boundary work.
		noon := midnight.Add(juldays.FractionalDays(0.5 - lon/360))

		sunLonDeg, err := m.SunLongitude(noon)
		if err != nil {
			return 0, err
		}
		decRad := sunDeclinationRad(sunLonDeg)

		cosH := -math.Tan(latRad) * math.Tan(decRad)
		if cosH < -1 || cosH > 1 {
			continue
		}
		hourAngle := math.Acos(cosH)
		hourAngleDays := juldays.FractionalDays(hourAngle / (2 * math.Pi))

		var candidate juldays.JulDaysUT
		if rising {
			candidate = noon.Add(-hourAngleDays)
		} else {
			candidate = noon.Add(hourAngleDays)
		}

		if candidate.After(after) {
			return candidate, nil
		}
	}

	if rising {
		return 0, CantFindSunriseAfter(after)
	}
	return 0, CantFindSunsetAfter(after)
}

func sunDeclinationRad(sunLongitudeDeg float64) float64 {
	sinDec := math.Sin(obliquityOfEclipticDeg*math.Pi/180) * math.Sin(sunLongitudeDeg*math.Pi/180)
	return math.Asin(sinDec)
}
