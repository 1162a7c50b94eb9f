package vrata

import (
	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/paran"
	"github.com/zapponejosh/vrata-api/internal/tithi"
	"github.com/zapponejosh/vrata-api/internal/tithisolver"
)

// sunriseEpsilon is the small forward offset past a just-located sunrise,
// used to search strictly past it for the next one.
const sunriseEpsilon = juldays.FractionalDays(0.001)

// FindNextVrata locates the first ekādaśī fast falling on or after
// after, at location, implementing spec §4.3 Phases A through F.
func FindNextVrata(ephem ephemeris.Ephemeris, after juldays.CivilDate, location Location, flags ephemeris.CalcFlags) (*Vrata, error) {
	loc, err := location.Zone()
	if err != nil {
		return nil, err
	}

	midnightUT := after.MidnightUT(location.Longitude)
	startTime := midnightUT.Add(-3)

	v, err := resolveAttempt(ephem, location, flags, startTime)
	if err != nil {
		return nil, err
	}

	date := juldays.CivilDateOf(v.Sunrise1, loc)
	if date.Before(after) {
		// Phase D: the -3 day lookback landed on an ekādaśī that had
		// already passed by "after". Restart once, without the lookback.
		v, err = resolveAttempt(ephem, location, flags, midnightUT)
		if err != nil {
			return nil, err
		}
		date = juldays.CivilDateOf(v.Sunrise1, loc)
		if date.Before(after) {
			return nil, ephemeris.PotentialEternalLoop("resolved vrata date precedes search start after a restart")
		}
	}

	v.Date = date
	return v, nil
}

// resolveAttempt runs Phases A, B/C, and E/F once from startTime. Phase
// D's restart is the caller's concern.
func resolveAttempt(ephem ephemeris.Ephemeris, location Location, flags ephemeris.CalcFlags, startTime juldays.JulDaysUT) (*Vrata, error) {
	lat, lon := location.Latitude, location.Longitude

	// Phase A: locate the ekādaśī tithi and the sunrise/sunset bracketing it.
	ekadashiUT, err := tithisolver.FindTithiStart(ephem, startTime, tithi.Ekadashi)
	if err != nil {
		return nil, err
	}
	sunrise1, err := ephem.FindSunrise(ekadashiUT, lat, lon, flags)
	if err != nil {
		return nil, err
	}
	sunset0, err := ephem.FindSunset(sunrise1.Add(-1), lat, lon, flags)
	if err != nil {
		return nil, err
	}
	sunrise2, err := ephem.FindSunrise(sunrise1.Add(sunriseEpsilon), lat, lon, flags)
	if err != nil {
		return nil, err
	}

	// Phase B/C: classify the night and, if the relevant test instant
	// still falls in daśamī, postpone by one sunrise (purva-viddha). At
	// most one postponement is legitimate; a second is a fatal loop.
	var sunrise0 *juldays.JulDaysUT
	var points VrataTimePoints
	var relevant juldays.JulDaysUT
	postponed := false

	for {
		pts, class, err := computeTimePoints(ephem, sunset0, sunrise1)
		if err != nil {
			return nil, err
		}

		rel := relevantTestInstant(pts, class)
		relTithi, err := ephem.Tithi(rel)
		if err != nil {
			return nil, err
		}

		if relTithi.IsDashami() {
			if postponed {
				return nil, ephemeris.PotentialEternalLoop("second ativṛddhādi postponement in one resolution")
			}
			postponed = true

			shifted := sunrise1
			sunrise0 = &shifted
			sunrise1 = sunrise2

			sunset0, err = ephem.FindSunset(sunrise1.Add(-1), lat, lon, flags)
			if err != nil {
				return nil, err
			}
			sunrise2, err = ephem.FindSunrise(sunrise1.Add(sunriseEpsilon), lat, lon, flags)
			if err != nil {
				return nil, err
			}
			continue
		}

		points = pts
		relevant = rel
		break
	}

	sandigdha := isSandigdha(points, relevant)

	// Phase E: detect an atiriktā (two-day) extended fast.
	t1, err := ephem.Tithi(sunrise1)
	if err != nil {
		return nil, err
	}
	t2, err := ephem.Tithi(sunrise2)
	if err != nil {
		return nil, err
	}

	sunset1, err := ephem.FindSunset(sunrise1.Add(sunriseEpsilon), lat, lon, flags)
	if err != nil {
		return nil, err
	}
	sunset2, err := ephem.FindSunset(sunrise2.Add(sunriseEpsilon), lat, lon, flags)
	if err != nil {
		return nil, err
	}

	baseType := Ekadashi
	var sunrise3, sunset3 *juldays.JulDaysUT

	switch {
	case t1.IsEkadashi() && t2.IsEkadashi():
		baseType = WithAtiriktaEkadashi
		sr3, err := ephem.FindSunrise(sunrise2.Add(sunriseEpsilon), lat, lon, flags)
		if err != nil {
			return nil, err
		}
		sunrise3 = &sr3

	case t2.IsDvadashi():
		sr3, err := ephem.FindSunrise(sunrise2.Add(sunriseEpsilon), lat, lon, flags)
		if err != nil {
			return nil, err
		}
		t3, err := ephem.Tithi(sr3)
		if err != nil {
			return nil, err
		}
		if t3.IsDvadashi() {
			baseType = WithAtiriktaDvadashi
			sunrise3 = &sr3
		}
	}

	if sunrise3 != nil {
		ss3, err := ephem.FindSunset(sunrise3.Add(sunriseEpsilon), lat, lon, flags)
		if err != nil {
			return nil, err
		}
		sunset3 = &ss3
	}

	// Phase F: the pāraṇam. Atiriktā fasts break on sunrise3/sunset3;
	// single-day fasts break on sunrise2/sunset2.
	sr, ss := sunrise2, sunset2
	if sunrise3 != nil {
		sr, ss = *sunrise3, *sunset3
	}

	p := paran.Compute(paran.Points{
		Sunrise:       sr,
		Sunset:        ss,
		DvadashiStart: points.DvadashiStart,
		DvadashiEnd:   points.TrayodashiStart,
		Atirikta:      sunrise3 != nil,
	})

	finalType := baseType
	if sandigdha {
		switch baseType {
		case Ekadashi:
			finalType = SandigdhaEkadashi
		case WithAtiriktaEkadashi:
			finalType = SandigdhaAtiriktaEkadashi
		case WithAtiriktaDvadashi:
			finalType = SandigdhaWithAtiriktaDvadashi
		}
	}

	return &Vrata{
		Type:     finalType,
		Location: location,
		Sunrise0: sunrise0,
		Sunrise1: sunrise1,
		Sunrise2: sunrise2,
		Sunrise3: sunrise3,
		Sunset0:  sunset0,
		Sunset1:  &sunset1,
		Sunset2:  &sunset2,
		Sunset3:  sunset3,
		Times:    points,
		Paran:    p,
	}, nil
}

// ResolveWithLatitudeFallback implements spec §4.5: above 60° latitude,
// sunrise/sunset can fail to exist (polar day/night). On such a failure,
// retry with latitude decremented by 1°, down to 60°, flagging the
// result as latitude-adjusted.
func ResolveWithLatitudeFallback(ephem ephemeris.Ephemeris, after juldays.CivilDate, location Location, flags ephemeris.CalcFlags) (*Vrata, error) {
	if location.Latitude <= 60 {
		return FindNextVrata(ephem, after, location, flags)
	}

	lat := location.Latitude
	for {
		attempt := location
		attempt.Latitude = lat
		attempt.LatitudeAdjusted = lat != location.Latitude
		if attempt.LatitudeAdjusted {
			attempt.Name = location.Name + " (latitude adjusted)"
		}

		v, err := FindNextVrata(ephem, after, attempt, flags)
		if err == nil {
			return v, nil
		}
		if !ephemeris.IsSunriseOrSunsetError(err) || lat <= 60 {
			return nil, err
		}
		lat--
	}
}
