// Package astro computes the small set of positional-astronomy quantities
// the observation log needs: Moon illumination and position, angular
// separation between sky coordinates, meridian-transit times, and object
// name resolution against an external catalog service.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// one astronomical unit in km, for converting solar radius vectors
const auKm = 149597870.7

// EquatorialPosition is a geocentric apparent position at an instant.
type EquatorialPosition struct {
	RADegrees  float64 // right ascension, [0,360)
	DecDegrees float64 // declination, [-90,90]
	DistanceKm float64 // geocentric distance
}

// Ephemeris supplies Sun/Moon geocentric apparent positions and sidereal
// time. The computations in this package are written against this
// capability set rather than a specific provider so tests can substitute
// deterministic fakes.
type Ephemeris interface {
	// SunPosition returns the Sun's geocentric apparent position at t.
	SunPosition(t time.Time) (EquatorialPosition, error)

	// MoonPosition returns the Moon's geocentric apparent position at t.
	MoonPosition(t time.Time) (EquatorialPosition, error)

	// ApparentSiderealTime returns Greenwich apparent sidereal time at t,
	// in hours [0,24).
	ApparentSiderealTime(t time.Time) (float64, error)
}

// MeeusEphemeris implements Ephemeris with the Meeus algorithms from
// soniakeys/meeus. It is stateless and safe for concurrent use.
type MeeusEphemeris struct{}

// SunPosition implements Ephemeris.
func (MeeusEphemeris) SunPosition(t time.Time) (EquatorialPosition, error) {
	jde := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jde)
	distKm := solar.Radius(base.J2000Century(jde)) * auKm
	return EquatorialPosition{
		RADegrees:  normalizeDeg(ra.Rad() * 180 / math.Pi),
		DecDegrees: dec.Rad() * 180 / math.Pi,
		DistanceKm: distKm,
	}, nil
}

// MoonPosition implements Ephemeris.
func (MeeusEphemeris) MoonPosition(t time.Time) (EquatorialPosition, error) {
	jde := julian.TimeToJD(t.UTC())
	lon, lat, distKm := moonposition.Position(jde)
	obl := coord.NewObliquity(nutation.MeanObliquity(jde))
	eq := new(coord.Equatorial).EclToEq(&coord.Ecliptic{Lon: lon, Lat: lat}, obl)
	return EquatorialPosition{
		RADegrees:  normalizeDeg(eq.RA.Rad() * 180 / math.Pi),
		DecDegrees: eq.Dec.Rad() * 180 / math.Pi,
		DistanceKm: distKm,
	}, nil
}

// ApparentSiderealTime implements Ephemeris.
func (MeeusEphemeris) ApparentSiderealTime(t time.Time) (float64, error) {
	gast := sidereal.Apparent(julian.TimeToJD(t.UTC()))
	h := math.Mod(gast.Hour(), 24)
	if h < 0 {
		h += 24
	}
	return h, nil
}

// normalizeDeg wraps an angle into [0,360).
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
