package painttypes

import "math"

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it:
//
//   - SolidBrush: a single solid color
//   - GradientBrush: a color transition defined by a Gradient
//   - ImageBrush: an image resource with sampling parameters
//
// Example usage:
//
//	fill := painttypes.Solid(painttypes.Red)
//	stroke := painttypes.NewLinearGradient(painttypes.Pt(0, 0), painttypes.Pt(100, 0)).
//	    WithStops(painttypes.StopsFromColors(painttypes.Red, painttypes.Blue)).
//	    Brush()
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of
	// position. For gradients and images, it samples at (x, y). This is
	// the CPU reference path; GPU renderers consume the brush description
	// directly.
	ColorAt(x, y float64) RGBA

	// MultiplyAlpha returns the brush with its alpha multiplied by alpha.
	MultiplyAlpha(alpha float64) Brush
}

// SolidBrush is a single-color brush.
// It implements the Brush interface and always returns the same color.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// MultiplyAlpha implements Brush.
func (b SolidBrush) MultiplyAlpha(alpha float64) Brush {
	return SolidBrush{Color: b.Color.MultiplyAlpha(alpha)}
}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := painttypes.Solid(painttypes.Red)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates a SolidBrush from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{Color: b.Color.WithAlpha(alpha)}
}

// Lerp performs linear interpolation between two solid brushes.
func (b SolidBrush) Lerp(other SolidBrush, t float64) SolidBrush {
	return SolidBrush{Color: b.Color.Lerp(other.Color, t)}
}

// GradientBrush paints with a color transition defined by a [Gradient].
type GradientBrush struct {
	// Gradient is the gradient definition: geometry, extend mode, stops.
	Gradient Gradient
}

// Brush wraps the gradient as a GradientBrush.
func (g Gradient) Brush() GradientBrush {
	return GradientBrush{Gradient: g}
}

// brushMarker implements the sealed Brush interface.
func (GradientBrush) brushMarker() {}

// ColorAt implements Brush by sampling the gradient.
func (b GradientBrush) ColorAt(x, y float64) RGBA {
	return b.Gradient.ColorAt(x, y)
}

// MultiplyAlpha implements Brush.
func (b GradientBrush) MultiplyAlpha(alpha float64) Brush {
	return GradientBrush{Gradient: b.Gradient.MultiplyAlpha(alpha)}
}

// ImageBrush paints with a shared image resource.
type ImageBrush struct {
	// Image is the image resource to paint with.
	Image ImageData
	// Sampler controls extend modes, the quality hint and the alpha
	// multiplier.
	Sampler ImageSampler
}

// NewImageBrush creates an ImageBrush with the default sampler.
func NewImageBrush(img ImageData) ImageBrush {
	return ImageBrush{Image: img, Sampler: NewImageSampler()}
}

// WithSampler returns the brush with the given sampler.
func (b ImageBrush) WithSampler(s ImageSampler) ImageBrush {
	b.Sampler = s
	return b
}

// brushMarker implements the sealed Brush interface.
func (ImageBrush) brushMarker() {}

// ColorAt implements Brush by nearest-neighbor sampling with the sampler's
// extend modes. The quality hint is for renderers; this CPU reference path
// always samples the nearest pixel.
func (b ImageBrush) ColorAt(x, y float64) RGBA {
	if b.Image.Width == 0 || b.Image.Height == 0 {
		return Transparent
	}
	px := extendIndex(int(math.Floor(x)), int(b.Image.Width), b.Sampler.XExtend)
	py := extendIndex(int(math.Floor(y)), int(b.Image.Height), b.Sampler.YExtend)
	return b.Image.PixelAt(px, py).MultiplyAlpha(b.Sampler.Alpha)
}

// MultiplyAlpha implements Brush.
func (b ImageBrush) MultiplyAlpha(alpha float64) Brush {
	b.Sampler = b.Sampler.MultiplyAlpha(alpha)
	return b
}

// extendIndex maps a pixel index into [0, n) according to the extend mode.
func extendIndex(i, n int, mode Extend) int {
	switch mode {
	case ExtendRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case ExtendReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // ExtendPad
		return clampInt(i, 0, n-1)
	}
}
