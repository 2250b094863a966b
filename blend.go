package painttypes

// Mix defines the color mixing function for a blend operation.
// Values match the CSS compositing and blending specification.
type Mix uint8

const (
	// MixNormal specifies no blending: the source color is selected.
	MixNormal Mix = 0
	// MixMultiply multiplies source and destination colors.
	MixMultiply Mix = 1
	// MixScreen multiplies the complements and complements the result.
	MixScreen Mix = 2
	// MixOverlay multiplies or screens depending on the backdrop value.
	MixOverlay Mix = 3
	// MixDarken selects the darker of the two colors.
	MixDarken Mix = 4
	// MixLighten selects the lighter of the two colors.
	MixLighten Mix = 5
	// MixColorDodge brightens the backdrop to reflect the source.
	MixColorDodge Mix = 6
	// MixColorBurn darkens the backdrop to reflect the source.
	MixColorBurn Mix = 7
	// MixHardLight multiplies or screens depending on the source value.
	MixHardLight Mix = 8
	// MixSoftLight darkens or lightens depending on the source value.
	MixSoftLight Mix = 9
	// MixDifference subtracts the darker color from the lighter one.
	MixDifference Mix = 10
	// MixExclusion is like Difference but lower in contrast.
	MixExclusion Mix = 11
	// MixHue takes the source hue with backdrop saturation and luminosity.
	MixHue Mix = 12
	// MixSaturation takes the source saturation with backdrop hue and
	// luminosity.
	MixSaturation Mix = 13
	// MixColor takes the source hue and saturation with backdrop
	// luminosity.
	MixColor Mix = 14
	// MixLuminosity takes the source luminosity with backdrop hue and
	// saturation.
	MixLuminosity Mix = 15
	// MixClip is the same as Normal, but permits the renderer to skip an
	// isolated blend group.
	MixClip Mix = 128
)

// String returns the mix function name.
func (m Mix) String() string {
	switch m {
	case MixNormal:
		return "Normal"
	case MixMultiply:
		return "Multiply"
	case MixScreen:
		return "Screen"
	case MixOverlay:
		return "Overlay"
	case MixDarken:
		return "Darken"
	case MixLighten:
		return "Lighten"
	case MixColorDodge:
		return "ColorDodge"
	case MixColorBurn:
		return "ColorBurn"
	case MixHardLight:
		return "HardLight"
	case MixSoftLight:
		return "SoftLight"
	case MixDifference:
		return "Difference"
	case MixExclusion:
		return "Exclusion"
	case MixHue:
		return "Hue"
	case MixSaturation:
		return "Saturation"
	case MixColor:
		return "Color"
	case MixLuminosity:
		return "Luminosity"
	case MixClip:
		return "Clip"
	default:
		return "Unknown"
	}
}

// Compose defines the layer composition function for a blend operation.
// These are the Porter-Duff compositing operators.
type Compose uint8

const (
	// ComposeClear enables no regions.
	ComposeClear Compose = 0
	// ComposeCopy keeps only the source.
	ComposeCopy Compose = 1
	// ComposeDest keeps only the destination.
	ComposeDest Compose = 2
	// ComposeSrcOver places the source over the destination.
	ComposeSrcOver Compose = 3
	// ComposeDestOver places the destination over the source.
	ComposeDestOver Compose = 4
	// ComposeSrcIn keeps the source where it overlaps the destination.
	ComposeSrcIn Compose = 5
	// ComposeDestIn keeps the destination where it overlaps the source.
	ComposeDestIn Compose = 6
	// ComposeSrcOut keeps the source outside the destination.
	ComposeSrcOut Compose = 7
	// ComposeDestOut keeps the destination outside the source.
	ComposeDestOut Compose = 8
	// ComposeSrcAtop places the source atop the destination.
	ComposeSrcAtop Compose = 9
	// ComposeDestAtop places the destination atop the source.
	ComposeDestAtop Compose = 10
	// ComposeXor keeps the non-overlapping regions of both.
	ComposeXor Compose = 11
	// ComposePlus displays the sum of source and destination.
	ComposePlus Compose = 12
	// ComposePlusLighter cross-fades two elements by opposite opacity
	// ramps.
	ComposePlusLighter Compose = 13
)

// String returns the compose function name.
func (c Compose) String() string {
	switch c {
	case ComposeClear:
		return "Clear"
	case ComposeCopy:
		return "Copy"
	case ComposeDest:
		return "Dest"
	case ComposeSrcOver:
		return "SrcOver"
	case ComposeDestOver:
		return "DestOver"
	case ComposeSrcIn:
		return "SrcIn"
	case ComposeDestIn:
		return "DestIn"
	case ComposeSrcOut:
		return "SrcOut"
	case ComposeDestOut:
		return "DestOut"
	case ComposeSrcAtop:
		return "SrcAtop"
	case ComposeDestAtop:
		return "DestAtop"
	case ComposeXor:
		return "Xor"
	case ComposePlus:
		return "Plus"
	case ComposePlusLighter:
		return "PlusLighter"
	default:
		return "Unknown"
	}
}

// BlendMode pairs a color mixing function with a layer composition
// function.
type BlendMode struct {
	// Mix is the color mixing function.
	Mix Mix
	// Compose is the layer composition function.
	Compose Compose
}

// NewBlendMode creates a blend mode from mixing and composition functions.
func NewBlendMode(mix Mix, compose Compose) BlendMode {
	return BlendMode{Mix: mix, Compose: compose}
}

// DefaultBlendMode returns the default blend mode: Clip mixing with
// source-over composition.
func DefaultBlendMode() BlendMode {
	return BlendMode{Mix: MixClip, Compose: ComposeSrcOver}
}

// BlendMode converts a mix function to a blend mode with source-over
// composition.
func (m Mix) BlendMode() BlendMode {
	return BlendMode{Mix: m, Compose: ComposeSrcOver}
}

// BlendMode converts a composition function to a blend mode with normal
// mixing.
func (c Compose) BlendMode() BlendMode {
	return BlendMode{Mix: MixNormal, Compose: c}
}

// String returns "Mix/Compose".
func (b BlendMode) String() string {
	return b.Mix.String() + "/" + b.Compose.String()
}
