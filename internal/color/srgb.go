// Package color provides sRGB transfer-function conversions shared by the
// gradient and image sampling code.
package color

import "math"

// SRGBToLinear converts an sRGB-encoded component in [0, 1] to linear light.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component in [0, 1] to sRGB encoding.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// LerpLinear interpolates two sRGB-encoded components in linear space and
// returns the result re-encoded as sRGB.
func LerpLinear(a, b, t float64) float64 {
	la := SRGBToLinear(a)
	lb := SRGBToLinear(b)
	return LinearToSRGB(la + t*(lb-la))
}
