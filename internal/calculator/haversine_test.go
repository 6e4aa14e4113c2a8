package calculator

import (
	"math"
	"testing"
)

func TestGreatCircle_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 25.033, lon1: 121.565,
			lat2: 25.033, lon2: 121.565,
			wantKm:    0,
			tolerance: 1e-9,
		},
		{
			name: "quarter circumference along the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			wantKm:    10007.5,
			tolerance: 0.1,
		},
		{
			name: "pole to pole",
			lat1: 90, lon1: 0,
			lat2: -90, lon2: 0,
			wantKm:    20015.1,
			tolerance: 0.1,
		},
		{
			name: "New York to Los Angeles",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 34.0522, lon2: -118.2437,
			wantKm:    3936,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreatCircle(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("GreatCircle() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestGreatCircle_Symmetry(t *testing.T) {
	d1 := GreatCircle(25.0, 121.0, -26.0, -122.0)
	d2 := GreatCircle(-26.0, -122.0, 25.0, 121.0)
	if d1 != d2 {
		t.Errorf("great circle distance is not symmetric: %v vs %v", d1, d2)
	}
}

func TestGreatCircle_AntipodalStaysInDomain(t *testing.T) {
	// Antipodal points push the haversine term against 1; rounding must not
	// yield NaN from an out-of-domain sqrt/asin.
	got := GreatCircle(0, 0, 0, 180)
	if math.IsNaN(got) {
		t.Fatal("antipodal distance is NaN")
	}
	if math.Abs(got-20015.1) > 0.1 {
		t.Errorf("antipodal distance = %f, want 20015.1", got)
	}
}

func TestGreatCircle_NeverNegative(t *testing.T) {
	pts := [][4]float64{
		{12.345678901, 98.765432109, 12.345678901, 98.765432109},
		{-89.9999999, 0.0000001, -89.9999999, 0.0000001},
		{45, 180, 45, -180},
	}
	for _, p := range pts {
		if got := GreatCircle(p[0], p[1], p[2], p[3]); got < 0 {
			t.Errorf("GreatCircle(%v) = %f, want >= 0", p, got)
		}
	}
}

func TestGreatCircleOnSphere_UnitRadius(t *testing.T) {
	// Quarter circumference on a unit sphere is pi/2.
	got := GreatCircleOnSphere(1, 0, 0, 0, 90)
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("GreatCircleOnSphere(1, ...) = %v, want pi/2", got)
	}
}
