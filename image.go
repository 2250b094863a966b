package painttypes

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// ImageFormat defines the pixel format of an image payload.
type ImageFormat uint8

const (
	// ImageFormatRGBA8 is 32-bit RGBA with 8-bit channels.
	ImageFormatRGBA8 ImageFormat = iota
	// ImageFormatBGRA8 is 32-bit BGRA with 8-bit channels.
	ImageFormatBGRA8
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case ImageFormatRGBA8:
		return "RGBA8"
	case ImageFormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// SizeInBytes returns the required payload size for an image of the given
// dimensions in this format. ok is false when the computation overflows.
func (f ImageFormat) SizeInBytes(width, height uint32) (size int, ok bool) {
	const bpp = 4 // both supported formats are 4 bytes per pixel
	n := uint64(width) * uint64(height) * bpp
	if width != 0 && height != 0 && n/uint64(width)/uint64(height) != bpp {
		return 0, false
	}
	if n > uint64(int(^uint(0)>>1)) {
		return 0, false
	}
	return int(n), true
}

// TextureFormat maps the image format to the corresponding GPU texture
// format, so renderers can upload an [ImageData] payload directly.
func (f ImageFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case ImageFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// ImageAlphaType describes how alpha is encoded in the image pixels.
type ImageAlphaType uint8

const (
	// AlphaStraight means the image has a separate alpha channel
	// (also called unpremultiplied alpha).
	AlphaStraight ImageAlphaType = iota
	// AlphaPremultiplied means color channels are premultiplied by alpha.
	AlphaPremultiplied
)

// ImageQuality is a hint for the desired quality when sampling an image.
type ImageQuality uint8

const (
	// QualityLow is typically nearest neighbor sampling.
	QualityLow ImageQuality = iota
	// QualityMedium is typically bilinear sampling. The default.
	QualityMedium
	// QualityHigh is typically bicubic sampling.
	QualityHigh
)

// ImageSampler specifies how an image is sampled during rendering: extend
// modes per axis, a quality hint, and an extra alpha multiplier.
type ImageSampler struct {
	XExtend Extend       // Extend mode in the horizontal direction
	YExtend Extend       // Extend mode in the vertical direction
	Quality ImageQuality // Hint for desired rendering quality
	Alpha   float64      // Additional alpha multiplier, 1 is opaque
}

// NewImageSampler returns a sampler with default values: pad extend on both
// axes, medium quality, opaque.
func NewImageSampler() ImageSampler {
	return ImageSampler{Quality: QualityMedium, Alpha: 1}
}

// WithExtend returns the sampler with the extend mode set in both
// directions.
func (s ImageSampler) WithExtend(mode Extend) ImageSampler {
	s.XExtend = mode
	s.YExtend = mode
	return s
}

// WithXExtend returns the sampler with the horizontal extend mode set.
func (s ImageSampler) WithXExtend(mode Extend) ImageSampler {
	s.XExtend = mode
	return s
}

// WithYExtend returns the sampler with the vertical extend mode set.
func (s ImageSampler) WithYExtend(mode Extend) ImageSampler {
	s.YExtend = mode
	return s
}

// WithQuality returns the sampler with the quality hint set.
func (s ImageSampler) WithQuality(q ImageQuality) ImageSampler {
	s.Quality = q
	return s
}

// WithAlpha returns the sampler with the alpha multiplier set to alpha.
func (s ImageSampler) WithAlpha(alpha float64) ImageSampler {
	s.Alpha = alpha
	return s
}

// MultiplyAlpha returns the sampler with the alpha multiplier multiplied
// again by alpha.
func (s ImageSampler) MultiplyAlpha(alpha float64) ImageSampler {
	s.Alpha *= alpha
	return s
}

// ImageData is an owned shareable image resource: a pixel payload held in a
// [Blob] plus the metadata needed to interpret it.
//
// The payload is shared, never copied: copying an ImageData value shares
// the underlying blob handle. Use Data.Clone and Data.Release to manage
// additional ownership. Equality follows the blob's identity contract.
type ImageData struct {
	Data      Blob[byte]     // Pixel payload
	Format    ImageFormat    // Pixel format of the payload
	AlphaType ImageAlphaType // Encoding of alpha in the pixels
	Width     uint32         // Width in pixels
	Height    uint32         // Height in pixels
}

// NewImageData creates an image resource from a pixel blob. The payload
// length must match the format and dimensions exactly.
func NewImageData(data Blob[byte], format ImageFormat, width, height uint32) (ImageData, error) {
	want, ok := format.SizeInBytes(width, height)
	if !ok {
		return ImageData{}, fmt.Errorf("painttypes: image size %dx%d overflows", width, height)
	}
	if data.Len() != want {
		return ImageData{}, fmt.Errorf("painttypes: image payload is %d bytes, want %d for %v %dx%d",
			data.Len(), want, format, width, height)
	}
	return ImageData{
		Data:   data,
		Format: format,
		Width:  width,
		Height: height,
	}, nil
}

// WithAlphaType returns the image with the alpha encoding set.
func (d ImageData) WithAlphaType(alphaType ImageAlphaType) ImageData {
	d.AlphaType = alphaType
	return d
}

// Equal reports whether two images share the same payload resource and
// interpretation. Pixel content is never compared; the payload check is
// identity-based per the blob contract.
func (d ImageData) Equal(other ImageData) bool {
	return d.Data.Equal(other.Data) &&
		d.Format == other.Format &&
		d.AlphaType == other.AlphaType &&
		d.Width == other.Width &&
		d.Height == other.Height
}

// PixelAt returns the color of the pixel at (x, y), with coordinates
// clamped to the image bounds. The result is straight (unpremultiplied)
// alpha regardless of the image's alpha encoding. An empty image yields
// Transparent.
func (d ImageData) PixelAt(x, y int) RGBA {
	if d.Width == 0 || d.Height == 0 {
		return Transparent
	}
	x = clampInt(x, 0, int(d.Width)-1)
	y = clampInt(y, 0, int(d.Height)-1)

	px := d.Data.Data()[(y*int(d.Width)+x)*4:]
	var r, g, b, a uint8
	switch d.Format {
	case ImageFormatBGRA8:
		b, g, r, a = px[0], px[1], px[2], px[3]
	default:
		r, g, b, a = px[0], px[1], px[2], px[3]
	}

	c := RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
	if d.AlphaType == AlphaPremultiplied {
		c = c.Unpremultiply()
	}
	return c
}

// Image returns the pixels as a standard library image. The returned image
// aliases the payload for RGBA8 and must not be mutated; BGRA8 payloads are
// swizzled into a fresh buffer.
func (d ImageData) Image() image.Image {
	rect := image.Rect(0, 0, int(d.Width), int(d.Height))
	switch {
	case d.Format == ImageFormatRGBA8 && d.AlphaType == AlphaStraight:
		return &image.NRGBA{Pix: d.Data.Data(), Stride: int(d.Width) * 4, Rect: rect}
	case d.Format == ImageFormatRGBA8 && d.AlphaType == AlphaPremultiplied:
		return &image.RGBA{Pix: d.Data.Data(), Stride: int(d.Width) * 4, Rect: rect}
	default:
		src := d.Data.Data()
		out := image.NewNRGBA(rect)
		for i := 0; i+3 < len(src); i += 4 {
			out.Pix[i+0] = src[i+2]
			out.Pix[i+1] = src[i+1]
			out.Pix[i+2] = src[i+0]
			out.Pix[i+3] = src[i+3]
		}
		if d.AlphaType == AlphaPremultiplied {
			return &image.RGBA{Pix: out.Pix, Stride: out.Stride, Rect: rect}
		}
		return out
	}
}

// ImageFromImage converts any standard library image into an RGBA8 image
// resource with straight alpha. The pixels are copied once into a fresh
// blob with its own identity.
func ImageFromImage(src image.Image) ImageData {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)

	return ImageData{
		Data:   NewBlob(dst.Pix),
		Format: ImageFormatRGBA8,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
}

// ErrEmptyImageData is returned when decoding zero-length image bytes.
var ErrEmptyImageData = errors.New("painttypes: empty image data")

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
