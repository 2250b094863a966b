package painttypes

// Fill describes the rule that determines the interior portion of a shape.
type Fill int

const (
	// FillNonZero is the non-zero winding fill rule.
	FillNonZero Fill = iota
	// FillEvenOdd is the even-odd fill rule.
	FillEvenOdd
)

// String returns the fill rule name.
func (f Fill) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// JoinBevel connects segments with a straight line.
	JoinBevel Join = iota
	// JoinMiter extends segments to their natural intersection point.
	JoinMiter
	// JoinRound connects segments with an arc.
	JoinRound
)

// String returns the join style name.
func (j Join) String() string {
	switch j {
	case JoinBevel:
		return "Bevel"
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// Cap defines the shape drawn at the ends of a stroke.
type Cap int

const (
	// CapButt is a flat cap.
	CapButt Cap = iota
	// CapSquare is a square cap with dimensions equal to half the stroke
	// width.
	CapSquare
	// CapRound is a rounded cap with radius equal to half the stroke
	// width.
	CapRound
)

// String returns the cap style name.
func (c Cap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapSquare:
		return "Square"
	case CapRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// Stroke describes the visual style of a stroke. It is plain data with
// builder methods for chaining:
//
//	stroke := painttypes.NewStroke(2).
//	    WithJoin(painttypes.JoinMiter).
//	    WithCaps(painttypes.CapButt).
//	    WithDashes(0, 5, 3)
type Stroke struct {
	Width       float64   // Width of the stroke
	Join        Join      // Style for connecting segments
	MiterLimit  float64   // Limit for miter joins
	StartCap    Cap       // Cap at the beginning of an open subpath
	EndCap      Cap       // Cap at the end of an open subpath
	DashPattern []float64 // Alternating dash/gap lengths; empty means solid
	DashOffset  float64   // Offset of the first dash
	Scale       bool      // Whether stroke width follows transform scale
}

// NewStroke creates a stroke with the specified width and the default
// style: round joins and caps, miter limit 4, solid (no dashes), scaled
// by transforms.
func NewStroke(width float64) Stroke {
	return Stroke{
		Width:      width,
		Join:       JoinRound,
		MiterLimit: 4,
		StartCap:   CapRound,
		EndCap:     CapRound,
		Scale:      true,
	}
}

// WithJoin returns the stroke with the join style set.
func (s Stroke) WithJoin(join Join) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns the stroke with the miter join limit set.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithStartCap returns the stroke with the cap style for the start of the
// stroke set.
func (s Stroke) WithStartCap(c Cap) Stroke {
	s.StartCap = c
	return s
}

// WithEndCap returns the stroke with the cap style for the end of the
// stroke set.
func (s Stroke) WithEndCap(c Cap) Stroke {
	s.EndCap = c
	return s
}

// WithCaps returns the stroke with both cap styles set.
func (s Stroke) WithCaps(c Cap) Stroke {
	s.StartCap = c
	s.EndCap = c
	return s
}

// WithDashes returns the stroke with the dashing parameters set. The
// pattern is alternating dash/gap lengths; an empty pattern means a solid
// stroke. The original stroke's pattern is not modified.
func (s Stroke) WithDashes(offset float64, pattern ...float64) Stroke {
	s.DashOffset = offset
	s.DashPattern = append([]float64(nil), pattern...)
	return s
}

// WithScale returns the stroke with scaling behavior set: whether the
// stroke width is affected by the scale of an applied transform.
func (s Stroke) WithScale(yes bool) Stroke {
	s.Scale = yes
	return s
}

// Style describes draw style: a shape is either filled with a fill rule or
// stroked. This is a sealed interface - only [Fill] and [Stroke] implement
// it.
type Style interface {
	styleMarker()
}

func (Fill) styleMarker()   {}
func (Stroke) styleMarker() {}
