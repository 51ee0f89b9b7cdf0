package astro

import (
	"fmt"
	"math"
	"time"
)

// solar seconds in one sidereal day
const siderealDaySeconds = 86164.0905

// convergence tolerance for the transit search, in sidereal hours
// (3.6e-4 h of hour angle is well under a second of clock time)
const transitTolHours = 1e-4

// NextMeridianTransit returns the first instant at or after `after` when
// the target at raHours crosses the observer's local meridian (hour angle
// zero). The result is always >= after and is the next crossing, which
// recurs every sidereal day.
//
// Declination and elevation do not move the meridian crossing; they are
// part of the observer/target description shared with rise/set style
// searches.
func NextMeridianTransit(eph Ephemeris, raHours, decDeg, latDeg, lonDeg, elevM float64, after time.Time) (time.Time, error) {
	if raHours < 0 || raHours >= 24 {
		return time.Time{}, fmt.Errorf("right ascension %v h out of range [0,24)", raHours)
	}

	t := after.UTC()
	for iter := 0; iter < 10; iter++ {
		gast, err := eph.ApparentSiderealTime(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("meridian transit search: %w", err)
		}
		lst := math.Mod(gast+lonDeg/15, 24)
		if lst < 0 {
			lst += 24
		}

		// sidereal hours until the local sidereal time equals the RA
		diff := math.Mod(raHours-lst, 24)
		if diff < 0 {
			diff += 24
		}
		// transit is within tolerance, either just ahead or (after an
		// overshooting refinement step) fractionally behind
		if diff <= transitTolHours || diff >= 24-transitTolHours {
			return t, nil
		}
		t = t.Add(time.Duration(diff * siderealDaySeconds / 24 * float64(time.Second)))
	}
	return t, nil
}
