package painttypes

// NormalizedCoord is a normalized font variation coordinate in 2.14 fixed
// point format.
type NormalizedCoord = int16

// PositionedGlyph is a glyph positioned in 2D space.
type PositionedGlyph struct {
	// ID of the glyph within its font.
	ID uint32
	// X position of the glyph.
	X float32
	// Y position of the glyph.
	Y float32
}
