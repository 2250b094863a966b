package painttypes

import (
	"bytes"
	"fmt"
	"image"

	// Stdlib decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended format decoders.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes encoded image bytes (PNG, JPEG, GIF, BMP, TIFF or
// WebP) into an RGBA8 [ImageData] with straight alpha and a fresh resource
// identity.
//
// Decoding the same bytes twice yields two distinct resources: identity is
// allocated per decode, never derived from content.
func DecodeImage(data []byte) (ImageData, error) {
	if len(data) == 0 {
		return ImageData{}, ErrEmptyImageData
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageData{}, fmt.Errorf("painttypes: decode image: %w", err)
	}

	img := ImageFromImage(src)
	Logger().Debug("decoded image",
		"format", format,
		"width", img.Width,
		"height", img.Height,
		"blob", uint64(img.Data.ID()))
	return img, nil
}
