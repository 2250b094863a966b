package painttypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned when constructing a font from an empty blob.
var ErrEmptyFontData = errors.New("painttypes: empty font data")

// Font is an owned shareable font resource: the raw bytes of a font file
// held in a [Blob], plus the index of the font within a collection.
//
// Font is a value type; copying it shares the underlying blob handle. Two
// fonts are equal when they share the same data resource (identity-based,
// per the blob contract) and the same collection index. The data is parsed
// on demand via [Font.Parse]; the Font itself never inspects the bytes.
type Font struct {
	// Data is the blob containing the content of the font file.
	Data Blob[byte]
	// Index is the index of the font in a collection, or 0 for a single
	// font.
	Index uint32
}

// NewFont creates a font with the given data and collection index.
func NewFont(data Blob[byte], index uint32) Font {
	return Font{Data: data, Index: index}
}

// Equal reports whether two fonts refer to the same font resource.
// The payload is never compared byte-wise.
func (f Font) Equal(other Font) bool {
	return f.Data.Equal(other.Data) && f.Index == other.Index
}

// Parse parses the font data into a typesetting face, honoring the
// collection index for TTC/OTC payloads. Parsing is not cached here;
// shapers that parse repeatedly should keep their own cache keyed on
// [Blob.ID].
func (f Font) Parse() (*font.Face, error) {
	if f.Data.IsEmpty() {
		return nil, ErrEmptyFontData
	}
	reader := bytes.NewReader(f.Data.Data())

	if f.Index == 0 {
		if face, err := font.ParseTTF(reader); err == nil {
			return face, nil
		}
		// Not a single font; retry as a collection below.
		if _, err := reader.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("painttypes: parse font: %w", err)
		}
	}

	faces, err := font.ParseTTC(reader)
	if err != nil {
		return nil, fmt.Errorf("painttypes: parse font: %w", err)
	}
	if int(f.Index) >= len(faces) {
		return nil, fmt.Errorf("painttypes: font index %d out of range, collection has %d fonts",
			f.Index, len(faces))
	}
	return faces[f.Index], nil
}

// String returns a debug representation showing the resource identity and
// collection index, never the payload.
func (f Font) String() string {
	return fmt.Sprintf("Font(%d@%d)", f.Data.ID(), f.Index)
}
