package astro

import (
	"fmt"
	"math"
	"time"
)

// MoonData is the per-session Moon geometry stored alongside a session.
type MoonData struct {
	IlluminationPercent float64 // [0,100]
	RADegrees           float64 // [0,360)
	DecDegrees          float64 // [-90,90]
}

// MoonIllumination computes the Moon's illuminated fraction and equatorial
// position at an absolute instant. Callers holding a naive wall-clock
// value must resolve it to UTC first.
//
// The phase angle comes from the Sun-Moon elongation and both geocentric
// distances:
//
//	i = atan2(R·sin ψ, Δ − R·cos ψ)
//
// and the illuminated fraction from Lambert's law, (1 + cos i) / 2.
func MoonIllumination(eph Ephemeris, t time.Time) (MoonData, error) {
	sun, err := eph.SunPosition(t)
	if err != nil {
		return MoonData{}, fmt.Errorf("moon illumination: sun position: %w", err)
	}
	moon, err := eph.MoonPosition(t)
	if err != nil {
		return MoonData{}, fmt.Errorf("moon illumination: moon position: %w", err)
	}

	elongation := separationRad(
		sun.RADegrees*math.Pi/180, sun.DecDegrees*math.Pi/180,
		moon.RADegrees*math.Pi/180, moon.DecDegrees*math.Pi/180,
	)
	phaseAngle := math.Atan2(
		sun.DistanceKm*math.Sin(elongation),
		moon.DistanceKm-sun.DistanceKm*math.Cos(elongation),
	)
	fraction := (1 + math.Cos(phaseAngle)) / 2

	return MoonData{
		IlluminationPercent: fraction * 100,
		RADegrees:           moon.RADegrees,
		DecDegrees:          moon.DecDegrees,
	}, nil
}
