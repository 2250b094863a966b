package painttypes

import (
	"math"
	"testing"
)

// TestLinearGradientColorAt tests sampling along a horizontal gradient,
// including the linear-sRGB midpoint.
func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(Pt(0, 0), Pt(100, 0)).
		WithStops(StopsFromColors(Black, White))

	if got := g.ColorAt(0, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("start = %v, want black", got)
	}
	if got := g.ColorAt(100, 0); !colorNear(got, White, 1e-9) {
		t.Errorf("end = %v, want white", got)
	}

	// The midpoint interpolates in linear light: sRGB(0.5 linear) ~ 0.7354,
	// noticeably brighter than the naive component midpoint 0.5.
	mid := g.ColorAt(50, 0)
	if math.Abs(mid.R-0.73536) > 1e-3 {
		t.Errorf("midpoint R = %v, want ~0.73536 (linear interpolation)", mid.R)
	}

	// Y offset is irrelevant for a horizontal gradient.
	if got := g.ColorAt(50, 999); !colorNear(got, mid, 1e-9) {
		t.Errorf("sampling must be independent of the perpendicular axis")
	}
}

// TestGradientExtendModes tests pad, repeat and reflect normalization
// beyond the gradient bounds.
func TestGradientExtendModes(t *testing.T) {
	stops := StopsFromColors(Black, White)
	line := func(mode Extend) Gradient {
		return NewLinearGradient(Pt(0, 0), Pt(100, 0)).WithStops(stops).WithExtend(mode)
	}

	tests := []struct {
		name  string
		mode  Extend
		x     float64
		wantT float64 // expected effective offset in [0, 1]
	}{
		{"pad clamps above", ExtendPad, 150, 1},
		{"pad clamps below", ExtendPad, -50, 0},
		{"repeat wraps", ExtendRepeat, 125, 0.25},
		{"repeat wraps negative", ExtendRepeat, -25, 0.75},
		{"reflect mirrors", ExtendReflect, 125, 0.75},
		{"reflect second period", ExtendReflect, 225, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := line(tt.mode).ColorAt(tt.x, 0)
			want := colorAtOffset(stops, tt.wantT, ExtendPad)
			if !colorNear(got, want, 1e-9) {
				t.Errorf("ColorAt(%v) = %v, want offset %v = %v", tt.x, got, tt.wantT, want)
			}
		})
	}
}

// TestRadialGradientColorAt tests the simple radial parameterization.
func TestRadialGradientColorAt(t *testing.T) {
	g := NewRadialGradient(Pt(0, 0), 10).
		WithStops(StopsFromColors(White, Black))

	if got := g.ColorAt(0, 0); !colorNear(got, White, 1e-9) {
		t.Errorf("center = %v, want white", got)
	}
	if got := g.ColorAt(10, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("rim = %v, want black", got)
	}
	// Same distance in any direction.
	a := g.ColorAt(5, 0)
	b := g.ColorAt(0, 5)
	if !colorNear(a, b, 1e-9) {
		t.Error("radial sampling must be rotationally symmetric")
	}
}

// TestTwoPointRadialGradient tests the focal parameterization edges.
func TestTwoPointRadialGradient(t *testing.T) {
	g := NewTwoPointRadialGradient(Pt(20, 0), 0, Pt(50, 0), 50).
		WithStops(StopsFromColors(White, Black))

	// At the focus the parameter is 0.
	if got := g.ColorAt(20, 0); !colorNear(got, White, 1e-9) {
		t.Errorf("focus = %v, want white", got)
	}
	// On the end circle the parameter reaches 1.
	if got := g.ColorAt(100, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("end circle = %v, want black", got)
	}
}

// TestSweepGradientColorAt tests angular mapping of a full-circle sweep.
func TestSweepGradientColorAt(t *testing.T) {
	g := NewSweepGradient(Pt(0, 0), 0, 2*math.Pi).
		WithStops(StopsFromColors(Black, White))

	if got := g.ColorAt(1, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("angle 0 = %v, want black", got)
	}
	quarter := g.ColorAt(0, 1) // angle pi/2 -> t = 0.25
	want := colorAtOffset(g.Stops, 0.25, ExtendPad)
	if !colorNear(quarter, want, 1e-9) {
		t.Errorf("angle pi/2 = %v, want %v", quarter, want)
	}
	// Center has no defined angle; falls back to the first stop.
	if got := g.ColorAt(0, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("center = %v, want first stop", got)
	}
}

// TestGradientDegenerate tests the documented degenerate geometry
// fallbacks.
func TestGradientDegenerate(t *testing.T) {
	stops := StopsFromColors(Red, Blue)

	tests := []struct {
		name string
		g    Gradient
		want RGBA
	}{
		{"zero length line", NewLinearGradient(Pt(5, 5), Pt(5, 5)).WithStops(stops), Red},
		{"zero radius", NewRadialGradient(Pt(0, 0), 0).WithStops(stops), Red},
		{"zero sweep range", NewSweepGradient(Pt(0, 0), 1, 1).WithStops(stops), Red},
		{"no kind", Gradient{Stops: stops}, Red},
		{"no stops", NewLinearGradient(Pt(0, 0), Pt(1, 0)), Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.ColorAt(7, 3); !colorNear(got, tt.want, 1e-9) {
				t.Errorf("ColorAt = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSingleStop tests that one stop paints uniformly.
func TestSingleStop(t *testing.T) {
	g := NewLinearGradient(Pt(0, 0), Pt(100, 0)).AddStop(0.5, Magenta)
	for _, x := range []float64{-10, 0, 50, 100, 200} {
		if got := g.ColorAt(x, 0); !colorNear(got, Magenta, 1e-9) {
			t.Errorf("ColorAt(%v) = %v, want magenta", x, got)
		}
	}
}

// TestStopsFromColors tests even spacing.
func TestStopsFromColors(t *testing.T) {
	stops := StopsFromColors(Red, Green, Blue)
	if len(stops) != 3 {
		t.Fatalf("len = %d, want 3", len(stops))
	}
	wantOffsets := []float64{0, 0.5, 1}
	for i, want := range wantOffsets {
		if math.Abs(stops[i].Offset-want) > 1e-9 {
			t.Errorf("stop %d offset = %v, want %v", i, stops[i].Offset, want)
		}
	}

	single := StopsFromColors(Red)
	if len(single) != 1 || single[0].Offset != 0 {
		t.Errorf("single color: %v", single)
	}
	if StopsFromColors() != nil {
		t.Error("no colors should yield nil stops")
	}
}

// TestUnsortedStops tests that sampling sorts stops without mutating the
// caller's slice.
func TestUnsortedStops(t *testing.T) {
	stops := ColorStops{
		{Offset: 1, Color: White},
		{Offset: 0, Color: Black},
	}
	g := NewLinearGradient(Pt(0, 0), Pt(100, 0)).WithStops(stops)

	if got := g.ColorAt(0, 0); !colorNear(got, Black, 1e-9) {
		t.Errorf("start = %v, want black", got)
	}
	if stops[0].Offset != 1 {
		t.Error("sampling must not reorder the caller's stops")
	}
}

// TestGradientBuilders tests that builder methods leave the receiver
// untouched.
func TestGradientBuilders(t *testing.T) {
	base := NewLinearGradient(Pt(0, 0), Pt(1, 0)).AddStop(0, Red)

	extended := base.AddStop(1, Blue)
	if len(base.Stops) != 1 {
		t.Errorf("AddStop mutated receiver: %d stops", len(base.Stops))
	}
	if len(extended.Stops) != 2 {
		t.Errorf("AddStop result has %d stops, want 2", len(extended.Stops))
	}

	reflected := base.WithExtend(ExtendReflect)
	if base.Extend != ExtendPad {
		t.Error("WithExtend mutated receiver")
	}
	if reflected.Extend != ExtendReflect {
		t.Error("WithExtend result lost the mode")
	}
}

// TestGradientAlpha tests the stop-wide alpha helpers.
func TestGradientAlpha(t *testing.T) {
	g := NewLinearGradient(Pt(0, 0), Pt(1, 0)).
		WithStops(StopsFromColors(Red, Blue)).
		WithAlpha(0.5)

	for i, stop := range g.Stops {
		if math.Abs(stop.Color.A-0.5) > 1e-9 {
			t.Errorf("stop %d alpha = %v, want 0.5", i, stop.Color.A)
		}
	}

	half := g.MultiplyAlpha(0.5)
	for i, stop := range half.Stops {
		if math.Abs(stop.Color.A-0.25) > 1e-9 {
			t.Errorf("stop %d alpha = %v, want 0.25", i, stop.Color.A)
		}
	}
}

// TestExtendString tests debug names.
func TestExtendString(t *testing.T) {
	tests := []struct {
		mode Extend
		want string
	}{
		{ExtendPad, "Pad"},
		{ExtendRepeat, "Repeat"},
		{ExtendReflect, "Reflect"},
		{Extend(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
