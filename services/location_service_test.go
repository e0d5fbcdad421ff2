// File: /services/location_service_test.go
package services

import (
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	if d := Distance(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Fatalf("distance between identical points should be 0, got %f", d)
	}
}

func TestDistanceParisToLondon(t *testing.T) {
	d := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 350 {
		t.Fatalf("Paris-London should be roughly 344 km, got %f", d)
	}
}

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		km   float64
		want string
	}{
		{0, "0 m"},
		{0.999, "999 m"},
		{1.0, "1.0 km"},
		{12.34, "12.3 km"},
		{0.0004, "0 m"},
	}

	for _, tc := range cases {
		if got := FormatDistance(tc.km); got != tc.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tc.km, got, tc.want)
		}
	}
}
