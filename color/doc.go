// Package color provides the two color representations used by the
// shading code: RGB, three linear sRGB components, and Spectrum, 64
// spectral bins over [380, 720) nm.
//
// Both types are plain values. A value is either a reflectance or an
// illuminant; the constructors differ, the storage does not:
//
//	albedo := color.NewSpectrum(0.8, 0.2, 0.1)      // reflectance
//	light := color.SpectrumIlluminant(1, 1, 1)      // white light
//	seen := albedo.Mul(light).RGB32()               // ≈ (0.8, 0.2, 0.1)
//
// RGB to spectrum conversion uses Smits' method with two basis sets,
// one bounded for reflectances and one referenced to D65 for lights.
// Spectrum to RGB conversion integrates against the CIE 1931 matching
// functions.
//
// Constructors clamp negative inputs to zero and panic on non-finite
// inputs.
package color
