package color

import (
	"github.com/gogpu/pbr/internal/srgb"
	"github.com/gogpu/pbr/internal/tuple"
)

// Spectrum is a spectral quantity averaged over SpectrumSampleCount
// equal bins of [SpectrumMinWavelength, SpectrumMaxWavelength) nm.
type Spectrum [SpectrumSampleCount]float64

// NewSpectrum returns the reflectance spectrum of linear RGB components.
func NewSpectrum(r, g, b float64) Spectrum {
	return tables().reflectance.smits(component(r), component(g), component(b))
}

// SpectrumIlluminant returns the light spectrum of linear RGB components.
func SpectrumIlluminant(r, g, b float64) Spectrum {
	return tables().illumination.smits(component(r), component(g), component(b))
}

// SpectrumGray returns a flat spectrum of value v.
func SpectrumGray(v float64) Spectrum {
	v = component(v)
	var s Spectrum
	for i := range s {
		s[i] = v
	}
	return s
}

// SpectrumFromRGB8 returns the reflectance spectrum of an 8-bit sRGB color.
func SpectrumFromRGB8(c RGB8) Spectrum {
	return NewSpectrum(srgb.Uint8ToLinear(c.R), srgb.Uint8ToLinear(c.G), srgb.Uint8ToLinear(c.B))
}

// SpectrumIlluminantFromRGB8 returns the light spectrum of an 8-bit sRGB color.
func SpectrumIlluminantFromRGB8(c RGB8) Spectrum {
	return SpectrumIlluminant(srgb.Uint8ToLinear(c.R), srgb.Uint8ToLinear(c.G), srgb.Uint8ToLinear(c.B))
}

// Wavelength returns the center of bin i in nm.
func Wavelength(i int) float64 {
	const width = (SpectrumMaxWavelength - SpectrumMinWavelength) / SpectrumSampleCount
	return SpectrumMinWavelength + (float64(i)+0.5)*width
}

// Add returns s + o.
func (s Spectrum) Add(o Spectrum) Spectrum {
	tuple.Add(s[:], s[:], o[:])
	return s
}

// Sub returns s - o.
func (s Spectrum) Sub(o Spectrum) Spectrum {
	tuple.Sub(s[:], s[:], o[:])
	return s
}

// Mul returns the bin-wise product.
func (s Spectrum) Mul(o Spectrum) Spectrum {
	tuple.Mul(s[:], s[:], o[:])
	return s
}

// Div returns the bin-wise quotient.
func (s Spectrum) Div(o Spectrum) Spectrum {
	tuple.Div(s[:], s[:], o[:])
	return s
}

// Scale returns s * k.
func (s Spectrum) Scale(k float64) Spectrum {
	tuple.Scale(s[:], s[:], k)
	return s
}

// DivScalar returns s / k.
func (s Spectrum) DivScalar(k float64) Spectrum {
	tuple.DivScalar(s[:], s[:], k)
	return s
}

// AddScalar returns s + k in every bin.
func (s Spectrum) AddScalar(k float64) Spectrum {
	tuple.AddScalar(s[:], s[:], k)
	return s
}

// MultiplyAdd returns s + a*k.
func (s Spectrum) MultiplyAdd(a Spectrum, k float64) Spectrum {
	tuple.MultiplyAdd(s[:], a[:], k)
	return s
}

// Lerp interpolates from s to o.
func (s Spectrum) Lerp(o Spectrum, t float64) Spectrum {
	tuple.Interpolate(s[:], s[:], o[:], t)
	return s
}

// Clamp limits every bin to [lo, hi].
func (s Spectrum) Clamp(lo, hi float64) Spectrum {
	tuple.Clamp(s[:], s[:], lo, hi)
	return s
}

// MaxN returns max(s, v) in every bin.
func (s Spectrum) MaxN(v float64) Spectrum {
	tuple.MaxN(s[:], s[:], v)
	return s
}

// EqualToRelative reports whether s and o agree within a relative error.
func (s Spectrum) EqualToRelative(o Spectrum, rel float64) bool {
	return tuple.EqualToRelative(s[:], o[:], rel)
}

// EqualToAbsolute reports whether s and o agree within an absolute error.
func (s Spectrum) EqualToAbsolute(o Spectrum, abs float64) bool {
	return tuple.EqualToAbsolute(s[:], o[:], abs)
}

// LessThan reports whether s <= o bin-wise, up to a relative error.
func (s Spectrum) LessThan(o Spectrum, rel float64) bool {
	return tuple.LessThan(s[:], o[:], rel)
}

// IsBlack reports whether no bin is positive.
func (s Spectrum) IsBlack() bool { return tuple.IsBlack(s[:]) }

// IsFinite reports whether all bins are finite.
func (s Spectrum) IsFinite() bool { return tuple.IsFinite(s[:]) }

// IsNonNegative reports whether all bins are >= 0.
func (s Spectrum) IsNonNegative() bool { return tuple.IsNonNegative(s[:]) }

// IsInRange reports whether all bins are within [lo, hi].
func (s Spectrum) IsInRange(lo, hi float64) bool { return tuple.IsInRange(s[:], lo, hi) }

// HasNaN reports whether any bin is NaN.
func (s Spectrum) HasNaN() bool { return tuple.HasNaN(s[:]) }

// XYZ integrates the spectrum against the CIE 1931 matching functions.
// Y is the relative luminance.
func (s Spectrum) XYZ() (x, y, z float64) {
	t := tables()
	for i, v := range s {
		x += t.x[i] * v
		y += t.y[i] * v
		z += t.z[i] * v
	}
	return x, y, z
}

// Luminance returns the relative luminance.
func (s Spectrum) Luminance() float64 {
	t := tables()
	y := 0.0
	for i, v := range s {
		y += t.y[i] * v
	}
	return y
}

func (s Spectrum) linearRGB() RGB {
	r, g, b := srgb.XYZToLinearSRGB(s.XYZ())
	return RGB{max(r, 0), max(g, 0), max(b, 0)}
}

// reflectedRGB returns the RGB of the spectrum lit by the reference white.
func (s Spectrum) reflectedRGB() RGB {
	return s.Mul(tables().illumination.white).linearRGB()
}

// RGB32 returns the spectrum as linear sRGB, clamped to be non-negative.
func (s Spectrum) RGB32() [3]float32 {
	c := s.linearRGB()
	return [3]float32{float32(c[0]), float32(c[1]), float32(c[2])}
}

// String formats the spectrum as spectrum(v0, v1, ...).
func (s Spectrum) String() string {
	return tuple.Format("spectrum", s[:])
}
