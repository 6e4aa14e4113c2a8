package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_NamesAndRanges(t *testing.T) {
	points := New(rand.New(rand.NewSource(1))).Generate(100)
	require.Len(t, points, 100)

	seen := make(map[string]struct{})
	for i, p := range points {
		assert.Equal(t, fmt.Sprintf("Location%d", i+1), p.Name)

		_, dup := seen[p.Name]
		require.False(t, dup, "duplicate name %s", p.Name)
		seen[p.Name] = struct{}{}

		assert.GreaterOrEqual(t, p.Lat, -90.0)
		assert.LessOrEqual(t, p.Lat, 90.0)
		assert.GreaterOrEqual(t, p.Lon, -180.0)
		assert.LessOrEqual(t, p.Lon, 180.0)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := New(rand.New(rand.NewSource(42))).Generate(50)
	b := New(rand.New(rand.NewSource(42))).Generate(50)
	assert.Equal(t, a, b)

	c := New(rand.New(rand.NewSource(43))).Generate(50)
	assert.NotEqual(t, a, c)
}

// The fraction of a sphere's surface between latitudes -L and L is sin(L),
// so surface-uniform sampling puts half the points within ±30° and only
// (1-sin 60°)/2 ≈ 6.7% above 60°. Angle-uniform sampling would give 1/3 and
// 1/6 instead, far outside the tolerances below.
func TestGenerate_UniformBySurfaceArea(t *testing.T) {
	const n = 200000
	points := New(rand.New(rand.NewSource(7))).Generate(n)

	var within30, above60 int
	for _, p := range points {
		if math.Abs(p.Lat) <= 30 {
			within30++
		}
		if p.Lat > 60 {
			above60++
		}
	}

	assert.InDelta(t, 0.5, float64(within30)/n, 0.01)
	assert.InDelta(t, (1-math.Sin(60*math.Pi/180))/2, float64(above60)/n, 0.005)
}

func TestGenerate_CustomRadiusIsStillOnRange(t *testing.T) {
	points := NewOnSphere(rand.New(rand.NewSource(5)), 1.0).Generate(1000)
	for _, p := range points {
		require.GreaterOrEqual(t, p.Lat, -90.0)
		require.LessOrEqual(t, p.Lat, 90.0)
	}
}
