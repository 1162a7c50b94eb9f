package vrata

import (
	"github.com/zapponejosh/vrata-api/internal/ephemeris"
	"github.com/zapponejosh/vrata-api/internal/juldays"
	"github.com/zapponejosh/vrata-api/internal/tithi"
	"github.com/zapponejosh/vrata-api/internal/tithisolver"
)

// nightClass is the ativṛddhādi classification of the night between
// sunset0 and sunrise1 (spec §4.3 Phase B).
type nightClass int

const (
	classAtivrddha nightClass = iota
	classVrddha
	classSamyam
	classHrasa
)

// computeTimePoints locates the night's five reference instants and the
// four tithi-boundary instants they're defined against, and classifies
// the night.
func computeTimePoints(ephem ephemeris.Ephemeris, sunset0, sunrise1 juldays.JulDaysUT) (VrataTimePoints, nightClass, error) {
	n := sunrise1.Sub(sunset0)
	gh := juldays.FractionalDays(float64(n) / 30)
	vigh := juldays.FractionalDays(float64(gh) / 60)

	pts := VrataTimePoints{
		Sunset0:   sunset0,
		Sunrise1:  sunrise1,
		Ativrddha: sunrise1.Add(-(5*gh + 20*vigh)),
		Vrddha:    sunrise1.Add(-(5 * gh)),
		Samyam:    sunrise1.Add(-(4*gh + 10*vigh)),
		Hrasa:     sunrise1.Add(-(4*gh + 5*vigh)),
		Arunodaya: sunrise1.Add(-(4 * gh)),
	}

	dashamiSeed := sunrise1.Add(juldays.FractionalDays(-25.0 / 24))
	dashamiStart, err := tithisolver.FindTithiStart(ephem, dashamiSeed, tithi.Dashami)
	if err != nil {
		return VrataTimePoints{}, 0, err
	}

	ekadashiSeed := sunrise1.Add(juldays.FractionalDays(-27.0 / 24))
	ekadashiStart, err := tithisolver.FindTithiStart(ephem, ekadashiSeed, tithi.Ekadashi)
	if err != nil {
		return VrataTimePoints{}, 0, err
	}

	dvadashiSeed := ekadashiStart.Add(juldays.FractionalDays(1.0 / 24))
	dvadashiStart, err := tithisolver.FindTithiStart(ephem, dvadashiSeed, tithi.Dvadashi)
	if err != nil {
		return VrataTimePoints{}, 0, err
	}

	trayodashiSeed := dvadashiStart.Add(juldays.FractionalDays(1.0 / 24))
	trayodashiStart, err := tithisolver.FindTithiStart(ephem, trayodashiSeed, tithi.Trayodashi)
	if err != nil {
		return VrataTimePoints{}, 0, err
	}

	pts.DashamiStart = dashamiStart
	pts.EkadashiStart = ekadashiStart
	pts.DvadashiStart = dvadashiStart
	pts.TrayodashiStart = trayodashiStart

	d10 := float64(ekadashiStart.Sub(dashamiStart)) / float64(gh)
	d11 := float64(dvadashiStart.Sub(ekadashiStart)) / float64(gh)
	d12 := float64(trayodashiStart.Sub(dvadashiStart)) / float64(gh)

	return pts, classifyNight(d11-d10, d12-d11), nil
}

// classifyNight applies spec §4.3 Phase B's thresholds to the two
// tithi-length deltas, measured in ghaṭikā.
func classifyNight(delta1, delta2 float64) nightClass {
	max := delta1
	if delta2 > max {
		max = delta2
	}
	switch {
	case delta1 > 0 && delta2 > 0 && max >= 4:
		return classAtivrddha
	case delta1 > 0 && delta2 > 0 && max >= 1:
		return classVrddha
	case delta1 < 0 && delta2 < 0:
		return classHrasa
	default:
		return classSamyam
	}
}

// relevantTestInstant picks the reference instant Phase C tests the
// tithi at, per the night's classification.
func relevantTestInstant(pts VrataTimePoints, class nightClass) juldays.JulDaysUT {
	switch class {
	case classAtivrddha:
		return pts.Ativrddha
	case classVrddha:
		return pts.Vrddha
	case classSamyam:
		return pts.Samyam
	default:
		return pts.Hrasa
	}
}

// isSandigdha reports whether relevant falls within one vighaṭikā of the
// daśamī/ekādaśī boundary, marking the resolution as a borderline case
// worth flagging distinctly even though it resolves the same way.
func isSandigdha(pts VrataTimePoints, relevant juldays.JulDaysUT) bool {
	n := float64(pts.Sunrise1.Sub(pts.Sunset0))
	vigh := n / 30 / 60

	gap := float64(relevant.Sub(pts.EkadashiStart))
	if gap < 0 {
		gap = -gap
	}
	return gap < vigh
}
