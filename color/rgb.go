package color

import (
	"github.com/gogpu/pbr/internal/srgb"
	"github.com/gogpu/pbr/internal/tuple"
)

// RGB is a color in linear sRGB.
type RGB [3]float64

// NewRGB returns the reflectance with the given linear components.
func NewRGB(r, g, b float64) RGB {
	return RGB{component(r), component(g), component(b)}
}

// RGBIlluminant returns the light with the given linear components.
func RGBIlluminant(r, g, b float64) RGB {
	return NewRGB(r, g, b)
}

// RGBGray returns a color with all components equal to v.
func RGBGray(v float64) RGB {
	v = component(v)
	return RGB{v, v, v}
}

// RGBFromRGB8 decodes an 8-bit sRGB color.
func RGBFromRGB8(c RGB8) RGB {
	return RGB{srgb.Uint8ToLinear(c.R), srgb.Uint8ToLinear(c.G), srgb.Uint8ToLinear(c.B)}
}

// Red, Green and Blue return the components.
func (c RGB) Red() float64   { return c[0] }
func (c RGB) Green() float64 { return c[1] }
func (c RGB) Blue() float64  { return c[2] }

// Add returns c + o.
func (c RGB) Add(o RGB) RGB {
	tuple.Add(c[:], c[:], o[:])
	return c
}

// Sub returns c - o.
func (c RGB) Sub(o RGB) RGB {
	tuple.Sub(c[:], c[:], o[:])
	return c
}

// Mul returns the component-wise product.
func (c RGB) Mul(o RGB) RGB {
	tuple.Mul(c[:], c[:], o[:])
	return c
}

// Div returns the component-wise quotient.
func (c RGB) Div(o RGB) RGB {
	tuple.Div(c[:], c[:], o[:])
	return c
}

// Scale returns c * s.
func (c RGB) Scale(s float64) RGB {
	tuple.Scale(c[:], c[:], s)
	return c
}

// DivScalar returns c / s.
func (c RGB) DivScalar(s float64) RGB {
	tuple.DivScalar(c[:], c[:], s)
	return c
}

// AddScalar returns c + s for every component.
func (c RGB) AddScalar(s float64) RGB {
	tuple.AddScalar(c[:], c[:], s)
	return c
}

// MultiplyAdd returns c + a*s.
func (c RGB) MultiplyAdd(a RGB, s float64) RGB {
	tuple.MultiplyAdd(c[:], a[:], s)
	return c
}

// Lerp interpolates from c to o.
func (c RGB) Lerp(o RGB, t float64) RGB {
	tuple.Interpolate(c[:], c[:], o[:], t)
	return c
}

// Clamp limits every component to [lo, hi].
func (c RGB) Clamp(lo, hi float64) RGB {
	tuple.Clamp(c[:], c[:], lo, hi)
	return c
}

// MaxN returns max(c, v) for every component.
func (c RGB) MaxN(v float64) RGB {
	tuple.MaxN(c[:], c[:], v)
	return c
}

// EqualToRelative reports whether c and o agree within a relative error.
func (c RGB) EqualToRelative(o RGB, rel float64) bool {
	return tuple.EqualToRelative(c[:], o[:], rel)
}

// EqualToAbsolute reports whether c and o agree within an absolute error.
func (c RGB) EqualToAbsolute(o RGB, abs float64) bool {
	return tuple.EqualToAbsolute(c[:], o[:], abs)
}

// LessThan reports whether c <= o component-wise, up to a relative error.
func (c RGB) LessThan(o RGB, rel float64) bool {
	return tuple.LessThan(c[:], o[:], rel)
}

// IsBlack reports whether no component is positive.
func (c RGB) IsBlack() bool { return tuple.IsBlack(c[:]) }

// IsFinite reports whether all components are finite.
func (c RGB) IsFinite() bool { return tuple.IsFinite(c[:]) }

// IsNonNegative reports whether all components are >= 0.
func (c RGB) IsNonNegative() bool { return tuple.IsNonNegative(c[:]) }

// IsInRange reports whether all components are within [lo, hi].
func (c RGB) IsInRange(lo, hi float64) bool { return tuple.IsInRange(c[:], lo, hi) }

// HasNaN reports whether any component is NaN.
func (c RGB) HasNaN() bool { return tuple.HasNaN(c[:]) }

// Luminance returns the relative luminance.
func (c RGB) Luminance() float64 {
	return srgb.Luminance(c[0], c[1], c[2])
}

// RGB32 returns the linear components clamped to be non-negative.
func (c RGB) RGB32() [3]float32 {
	return [3]float32{clamp32(c[0]), clamp32(c[1]), clamp32(c[2])}
}

// RGB8 encodes the color as 8-bit sRGB.
func (c RGB) RGB8() RGB8 {
	return RGB8FromLinear(c[0], c[1], c[2])
}

// String formats the color as rgb(r, g, b).
func (c RGB) String() string {
	return tuple.Format("rgb", c[:])
}
