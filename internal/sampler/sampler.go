// Package sampler generates random point sets distributed uniformly over a
// sphere's surface.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"place-distance/internal/calculator"
	"place-distance/internal/models"
)

// Sampler draws points uniformly by surface area. The rand source is
// injected so runs are reproducible under a fixed seed.
type Sampler struct {
	rng    *rand.Rand
	radius float64
}

// New returns a Sampler over a sphere of Earth's mean radius.
func New(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng, radius: calculator.EarthRadiusKm}
}

// NewOnSphere returns a Sampler over a sphere with the given radius.
func NewOnSphere(rng *rand.Rand, radius float64) *Sampler {
	return &Sampler{rng: rng, radius: radius}
}

// Generate returns n points named "Location1".."LocationN".
//
// Sampling latitude uniformly in degrees would crowd points toward the
// poles. Instead the height z along the pole axis is drawn uniformly in
// [-R, R]: the surface area between two parallel cutting planes depends only
// on their separation, so uniform z gives uniform area, and the latitude
// falls out as asin(z/R). Longitude is uniform in [-180, 180).
func (s *Sampler) Generate(n int) []models.Point {
	points := make([]models.Point, 0, n)

	for i := 1; i <= n; i++ {
		z := (2*s.rng.Float64() - 1) * s.radius
		phi := 360*s.rng.Float64() - 180
		theta := math.Asin(z/s.radius) * 180 / math.Pi

		points = append(points, models.Point{
			Name: fmt.Sprintf("Location%d", i),
			Lat:  theta,
			Lon:  phi,
		})
	}

	return points
}
