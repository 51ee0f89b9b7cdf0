package astro

import "math"

// AngularSeparation returns the great-circle separation in degrees between
// two equatorial coordinates given in degrees. The result is in [0,180],
// symmetric in its arguments, and zero only for coincident points.
//
// Uses the haversine form rather than the plain law of cosines, which
// loses precision for very small and near-antipodal separations.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	return separationRad(
		ra1*math.Pi/180, dec1*math.Pi/180,
		ra2*math.Pi/180, dec2*math.Pi/180,
	) * 180 / math.Pi
}

func separationRad(ra1, dec1, ra2, dec2 float64) float64 {
	sdRA := math.Sin((ra2 - ra1) / 2)
	sdDec := math.Sin((dec2 - dec1) / 2)
	h := sdDec*sdDec + math.Cos(dec1)*math.Cos(dec2)*sdRA*sdRA
	if h > 1 {
		h = 1 // rounding can push antipodal points fractionally past 1
	}
	return 2 * math.Asin(math.Sqrt(h))
}
