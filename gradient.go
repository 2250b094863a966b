package painttypes

import (
	"math"
	"sort"

	"github.com/gogpu/painttypes/internal/color"
)

// Extend defines how a brush extends beyond its defined bounds.
type Extend int

const (
	// ExtendPad extends the content by repeating the edge color.
	ExtendPad Extend = iota
	// ExtendRepeat extends the content by repeating it.
	ExtendRepeat
	// ExtendReflect extends the content by reflecting it.
	ExtendReflect
)

// String returns the extend mode name.
func (e Extend) String() string {
	switch e {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// WithAlpha returns the stop with its color's alpha set to alpha.
func (s ColorStop) WithAlpha(alpha float64) ColorStop {
	return ColorStop{Offset: s.Offset, Color: s.Color.WithAlpha(alpha)}
}

// MultiplyAlpha returns the stop with its color's alpha multiplied by alpha.
func (s ColorStop) MultiplyAlpha(alpha float64) ColorStop {
	return ColorStop{Offset: s.Offset, Color: s.Color.MultiplyAlpha(alpha)}
}

// ColorStops is a collection of color stops.
type ColorStops []ColorStop

// StopsFromColors builds evenly spaced stops from a sequence of colors:
// the first color lands at offset 0, the last at offset 1. A single color
// yields one stop at offset 0.
func StopsFromColors(colors ...RGBA) ColorStops {
	if len(colors) == 0 {
		return nil
	}
	denom := float64(len(colors) - 1)
	if denom == 0 {
		denom = 1
	}
	stops := make(ColorStops, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{Offset: float64(i) / denom, Color: c}
	}
	return stops
}

// WithAlpha returns a copy of the stops with every alpha set to alpha.
func (s ColorStops) WithAlpha(alpha float64) ColorStops {
	out := make(ColorStops, len(s))
	for i, stop := range s {
		out[i] = stop.WithAlpha(alpha)
	}
	return out
}

// MultiplyAlpha returns a copy of the stops with every alpha multiplied by
// alpha.
func (s ColorStops) MultiplyAlpha(alpha float64) ColorStops {
	out := make(ColorStops, len(s))
	for i, stop := range s {
		out[i] = stop.MultiplyAlpha(alpha)
	}
	return out
}

// sortStops returns the stops ordered by offset without mutating s.
func sortStops(s ColorStops) ColorStops {
	if len(s) == 0 {
		return s
	}
	sorted := make(ColorStops, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// GradientKind describes the geometry of a gradient.
// This is a sealed interface - only types in this package implement it:
// [LinearKind], [RadialKind] and [SweepKind].
type GradientKind interface {
	// offset maps a point to the normalized gradient parameter.
	// ok is false when the geometry is degenerate at that point (for
	// example the center of a sweep), in which case the sampler falls
	// back to the first stop color.
	offset(p Point) (t float64, ok bool)
}

// LinearKind transitions between two or more colors along a line.
type LinearKind struct {
	Start Point // Starting point
	End   Point // Ending point
}

func (k LinearKind) offset(p Point) (float64, bool) {
	d := k.End.Sub(k.Start)
	lengthSq := d.LengthSquared()
	if lengthSq == 0 {
		return 0, false
	}
	// Project the point onto the gradient line.
	return p.Sub(k.Start).Dot(d) / lengthSq, true
}

// RadialKind transitions between two or more colors that radiate from an
// origin. The general form is a two point conical gradient: a start circle
// and an end circle. With coincident centers this is a simple radial
// gradient; with distinct centers the start center acts as a focal point
// (spotlight effect).
type RadialKind struct {
	StartCenter Point   // Center of the start circle
	StartRadius float64 // Radius of the start circle
	EndCenter   Point   // Center of the end circle
	EndRadius   float64 // Radius of the end circle
}

func (k RadialKind) offset(p Point) (float64, bool) {
	if k.StartCenter == k.EndCenter {
		radiusDiff := k.EndRadius - k.StartRadius
		if radiusDiff == 0 {
			return 0, false
		}
		return (p.Distance(k.StartCenter) - k.StartRadius) / radiusDiff, true
	}
	return k.focalOffset(p)
}

// focalOffset solves the ray-circle intersection for focal gradients:
// the ray runs from the start center (focus) through the point, and the
// parameter is the ratio of the point's distance to the intersection with
// the end circle.
func (k RadialKind) focalOffset(p Point) (float64, bool) {
	d := p.Sub(k.StartCenter)
	f := k.EndCenter.Sub(k.StartCenter)

	a := d.LengthSquared()
	if a == 0 {
		// Point at the focus.
		return 0, true
	}
	b := -2 * d.Dot(f)
	c := f.LengthSquared() - k.EndRadius*k.EndRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		// Point is outside the gradient circle.
		return 1, true
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Forward along the ray only.
	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0, true
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0, true
	}
	return pointDist / intersectDist, true
}

// SweepKind transitions between two or more colors that rotate around a
// center point. Also known as a conic gradient.
type SweepKind struct {
	Center     Point   // Center point
	StartAngle float64 // Start angle in radians, counter-clockwise of the x-axis
	EndAngle   float64 // End angle in radians
}

func (k SweepKind) offset(p Point) (float64, bool) {
	d := p.Sub(k.Center)
	if d.X == 0 && d.Y == 0 {
		// Angle undefined at the center.
		return 0, false
	}
	sweepRange := k.EndAngle - k.StartAngle
	if sweepRange == 0 {
		return 0, false
	}
	angle := math.Atan2(d.Y, d.X)
	return normalizeAngle(angle-k.StartAngle, sweepRange) / sweepRange, true
}

// normalizeAngle normalizes an angle relative to a sweep direction:
// [0, 2pi) for positive sweeps, (-2pi, 0] for negative sweeps.
func normalizeAngle(angle, sweepRange float64) float64 {
	twoPi := 2 * math.Pi
	if sweepRange > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}
	return angle
}

// Gradient is a definition of a color transition between two or more
// colors. It is plain data: cheap to copy, with no resource identity.
//
// Example:
//
//	g := painttypes.NewLinearGradient(painttypes.Pt(0, 0), painttypes.Pt(100, 0)).
//	    WithStops(painttypes.StopsFromColors(painttypes.Red, painttypes.Yellow, painttypes.Blue)).
//	    WithExtend(painttypes.ExtendReflect)
type Gradient struct {
	Kind   GradientKind // Geometry of the gradient
	Extend Extend       // How the gradient extends beyond bounds
	Stops  ColorStops   // Color stops defining the transition
}

// NewLinearGradient creates a linear gradient between two points.
func NewLinearGradient(start, end Point) Gradient {
	return Gradient{Kind: LinearKind{Start: start, End: end}}
}

// NewRadialGradient creates a simple radial gradient for the specified
// center point and radius.
func NewRadialGradient(center Point, radius float64) Gradient {
	return Gradient{Kind: RadialKind{
		StartCenter: center,
		EndCenter:   center,
		EndRadius:   radius,
	}}
}

// NewTwoPointRadialGradient creates a two point conical gradient for the
// specified center points and radii.
func NewTwoPointRadialGradient(startCenter Point, startRadius float64, endCenter Point, endRadius float64) Gradient {
	return Gradient{Kind: RadialKind{
		StartCenter: startCenter,
		StartRadius: startRadius,
		EndCenter:   endCenter,
		EndRadius:   endRadius,
	}}
}

// NewSweepGradient creates a sweep gradient for the specified center point
// and start and end angles (in radians).
func NewSweepGradient(center Point, startAngle, endAngle float64) Gradient {
	return Gradient{Kind: SweepKind{
		Center:     center,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}}
}

// WithExtend returns the gradient with the given extend mode.
func (g Gradient) WithExtend(mode Extend) Gradient {
	g.Extend = mode
	return g
}

// WithStops returns the gradient with the given color stop collection.
func (g Gradient) WithStops(stops ColorStops) Gradient {
	g.Stops = stops
	return g
}

// AddStop returns the gradient with a stop appended at the given offset.
// The original gradient's stops are not modified.
func (g Gradient) AddStop(offset float64, c RGBA) Gradient {
	stops := make(ColorStops, len(g.Stops), len(g.Stops)+1)
	copy(stops, g.Stops)
	g.Stops = append(stops, ColorStop{Offset: offset, Color: c})
	return g
}

// WithAlpha returns the gradient with the alpha of every stop set to alpha.
func (g Gradient) WithAlpha(alpha float64) Gradient {
	g.Stops = g.Stops.WithAlpha(alpha)
	return g
}

// MultiplyAlpha returns the gradient with the alpha of every stop
// multiplied by alpha.
func (g Gradient) MultiplyAlpha(alpha float64) Gradient {
	g.Stops = g.Stops.MultiplyAlpha(alpha)
	return g
}

// ColorAt returns the gradient color at the given point, interpolating
// between stops in linear sRGB.
func (g Gradient) ColorAt(x, y float64) RGBA {
	if g.Kind == nil {
		return firstStopColor(g.Stops)
	}
	t, ok := g.Kind.offset(Pt(x, y))
	if !ok {
		return firstStopColor(g.Stops)
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}

// applyExtend applies the extend mode to normalize t to [0, 1].
func applyExtend(t float64, mode Extend) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear interpolates two colors in linear sRGB space.
// Alpha is interpolated as-is; only the color channels pass through the
// transfer function.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: color.LerpLinear(c1.R, c2.R, t),
		G: color.LerpLinear(c1.G, c2.G, t),
		B: color.LerpLinear(c1.B, c2.B, t),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops ColorStops, t float64, mode Extend) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtend(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Coincident stops would divide by zero.
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the lowest-offset stop's color or Transparent if
// there are no stops.
func firstStopColor(stops ColorStops) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
