package color

import (
	"math"
	"testing"
)

// TestRoundTrip tests that the transfer functions invert each other across
// the full component range.
func TestRoundTrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		s := float64(i) / 100
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(got-s) > 1e-9 {
			t.Fatalf("round trip of %v drifted to %v", s, got)
		}
	}
}

// TestKnownValues tests a few anchor points of the sRGB transfer function.
func TestKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		srgb   float64
		linear float64
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"mid gray", 0.5, 0.21404114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SRGBToLinear(tt.srgb); math.Abs(got-tt.linear) > 1e-6 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.srgb, got, tt.linear)
			}
		})
	}
}

// TestLerpLinearEndpoints tests that interpolation hits its endpoints
// exactly and stays monotonic in between.
func TestLerpLinearEndpoints(t *testing.T) {
	if got := LerpLinear(0.2, 0.8, 0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("t=0: got %v", got)
	}
	if got := LerpLinear(0.2, 0.8, 1); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("t=1: got %v", got)
	}
	prev := LerpLinear(0.2, 0.8, 0)
	for i := 1; i <= 10; i++ {
		cur := LerpLinear(0.2, 0.8, float64(i)/10)
		if cur < prev {
			t.Fatalf("interpolation not monotonic at t=%v", float64(i)/10)
		}
		prev = cur
	}
}
