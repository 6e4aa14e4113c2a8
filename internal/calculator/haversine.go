package calculator

import (
	"math"
)

// EarthRadiusKm is the mean radius of Earth. The sphere approximation keeps
// the error below ~0.5% versus an ellipsoidal model.
const EarthRadiusKm = 6371.0

// GreatCircle returns the great-circle distance in kilometres between two
// points given in decimal degrees, on a sphere of Earth's mean radius.
//
// Inputs are expected to be latitude in [-90, 90] and longitude in
// [-180, 180]; no validation happens at this level.
func GreatCircle(lat1, lon1, lat2, lon2 float64) float64 {
	return GreatCircleOnSphere(EarthRadiusKm, lat1, lon1, lat2, lon2)
}

// GreatCircleOnSphere is GreatCircle with an explicit sphere radius; the
// result is in the radius's unit. Haversine with the spherical
// law-of-cosines cross term.
func GreatCircleOnSphere(radius, lat1, lon1, lat2, lon2 float64) float64 {
	const p = math.Pi / 180.0

	a := 0.5 - math.Cos((lat2-lat1)*p)/2 +
		math.Cos(lat1*p)*math.Cos(lat2*p)*(1-math.Cos((lon2-lon1)*p))/2

	// Rounding can push a just outside [0, 1] for coincident or antipodal
	// points, which would put sqrt/asin out of domain.
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	return 2 * radius * math.Asin(math.Sqrt(a))
}
