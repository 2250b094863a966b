package painttypes

import "testing"

// TestNewStrokeDefaults tests the default stroke style.
func TestNewStrokeDefaults(t *testing.T) {
	s := NewStroke(2)
	if s.Width != 2 {
		t.Errorf("Width = %v", s.Width)
	}
	if s.Join != JoinRound || s.StartCap != CapRound || s.EndCap != CapRound {
		t.Errorf("defaults: %+v", s)
	}
	if s.MiterLimit != 4 {
		t.Errorf("MiterLimit = %v, want 4", s.MiterLimit)
	}
	if len(s.DashPattern) != 0 || s.DashOffset != 0 {
		t.Error("default stroke must be solid")
	}
	if !s.Scale {
		t.Error("default stroke must scale with transforms")
	}
}

// TestStrokeBuilders tests builder chaining and receiver immutability.
func TestStrokeBuilders(t *testing.T) {
	base := NewStroke(1)
	s := base.
		WithJoin(JoinMiter).
		WithMiterLimit(10).
		WithCaps(CapButt).
		WithDashes(2, 5, 3).
		WithScale(false)

	if s.Join != JoinMiter || s.MiterLimit != 10 {
		t.Errorf("join config: %+v", s)
	}
	if s.StartCap != CapButt || s.EndCap != CapButt {
		t.Errorf("caps: %+v", s)
	}
	if s.DashOffset != 2 || len(s.DashPattern) != 2 || s.DashPattern[0] != 5 {
		t.Errorf("dashes: %+v", s)
	}
	if s.Scale {
		t.Error("WithScale(false) ignored")
	}

	if base.Join != JoinRound || len(base.DashPattern) != 0 {
		t.Error("builders must not mutate the receiver")
	}

	// Separate cap styles.
	mixed := NewStroke(1).WithStartCap(CapSquare).WithEndCap(CapButt)
	if mixed.StartCap != CapSquare || mixed.EndCap != CapButt {
		t.Errorf("mixed caps: %+v", mixed)
	}
}

// TestStrokeDashesDetached tests that the dash pattern does not alias the
// caller's slice.
func TestStrokeDashesDetached(t *testing.T) {
	pattern := []float64{4, 2}
	s := NewStroke(1).WithDashes(0, pattern...)
	pattern[0] = 99
	if s.DashPattern[0] != 4 {
		t.Error("WithDashes must copy the pattern")
	}
}

// TestStyleKinds tests that exactly the fill rule and stroke types satisfy
// Style.
func TestStyleKinds(t *testing.T) {
	styles := []Style{FillNonZero, FillEvenOdd, NewStroke(1)}
	for _, s := range styles {
		switch s.(type) {
		case Fill, Stroke:
		default:
			t.Errorf("unexpected style kind %T", s)
		}
	}
}

// TestStyleEnumStrings tests debug names for the style enums.
func TestStyleEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FillNonZero.String(), "NonZero"},
		{FillEvenOdd.String(), "EvenOdd"},
		{Fill(9).String(), "Unknown"},
		{JoinBevel.String(), "Bevel"},
		{JoinMiter.String(), "Miter"},
		{JoinRound.String(), "Round"},
		{CapButt.String(), "Butt"},
		{CapSquare.String(), "Square"},
		{CapRound.String(), "Round"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
