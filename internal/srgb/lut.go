// Package srgb converts between sRGB-encoded and linear components.
//
// 8-bit decoding goes through a lookup table built at init. Encoding and
// 16-bit decoding use the closed-form transfer functions, which are exact
// enough at these bit depths.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - IEC 61966-2-1:1999
package srgb

// uint8ToLinearLUT maps an sRGB byte to its linear value.
var uint8ToLinearLUT [256]float64

func init() {
	for i := range uint8ToLinearLUT {
		uint8ToLinearLUT[i] = SRGBToLinear(float64(i) / 255)
	}
}

// Uint8ToLinear converts an sRGB byte to a linear component in [0, 1].
//
// Example:
//
//	l := Uint8ToLinear(128) // ~0.2159 (not 0.5!)
func Uint8ToLinear(s uint8) float64 {
	return uint8ToLinearLUT[s]
}

// Uint16ToLinear converts a 16-bit sRGB value to a linear component.
func Uint16ToLinear(s uint16) float64 {
	return SRGBToLinear(float64(s) / 65535)
}

// LinearToUint8 encodes a linear component as an sRGB byte.
// Input is clamped to [0, 1]; NaN encodes as 0.
//
// Example:
//
//	s := LinearToUint8(0.5) // 188 (not 128!)
func LinearToUint8(l float64) uint8 {
	s := int(LinearToSRGB(l)*255 + 0.5)
	//nolint:gosec // G115: s is within [0,255] because LinearToSRGB is clamped
	return uint8(min(s, 255))
}

// LinearToUint16 encodes a linear component as a 16-bit sRGB value.
// Input is clamped to [0, 1]; NaN encodes as 0.
func LinearToUint16(l float64) uint16 {
	s := int(LinearToSRGB(l)*65535 + 0.5)
	//nolint:gosec // G115: s is within [0,65535] because LinearToSRGB is clamped
	return uint16(min(s, 65535))
}
