package srgb

import "math"

// SRGBToLinear applies the sRGB EOTF (Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input is clamped to [0, 1]; NaN maps to 0.
func SRGBToLinear(s float64) float64 {
	switch {
	case !(s > 0):
		return 0
	case s >= 1:
		return 1
	case s <= 0.04045:
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB OETF (Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input is clamped to [0, 1]; NaN maps to 0.
func LinearToSRGB(l float64) float64 {
	switch {
	case !(l > 0):
		return 0
	case l >= 1:
		return 1
	case l <= 0.0031308:
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Luminance returns the relative luminance of a linear sRGB color.
func Luminance(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// D65 matrices from Bruce Lindbloom's RGB/XYZ tables.
var (
	xyzToLinear = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
	linearToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
)

// XYZToLinearSRGB converts CIE XYZ to linear sRGB. The result is not
// clamped; colors outside the gamut have negative components.
func XYZToLinearSRGB(x, y, z float64) (r, g, b float64) {
	return mul(&xyzToLinear, x, y, z)
}

// LinearSRGBToXYZ converts linear sRGB to CIE XYZ.
func LinearSRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return mul(&linearToXYZ, r, g, b)
}

func mul(m *[3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}
