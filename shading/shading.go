// Package shading holds the types shared by the BRDF implementations:
// the material colors, the BRDF sample and the color constraint.
package shading

import (
	"github.com/gogpu/pbr/color"
	"github.com/gogpu/pbr/numerical"
)

// dielectricF0 is the reflectance at normal incidence of a non-metal.
const dielectricF0 = 0.05

// Color is the constraint satisfied by color.RGB and color.Spectrum.
type Color[C any] interface {
	color.Value

	Add(o C) C
	Sub(o C) C
	Mul(o C) C
	Div(o C) C
	Scale(s float64) C
	AddScalar(s float64) C
	MultiplyAdd(a C, s float64) C
	Lerp(o C, t float64) C
	Clamp(lo, hi float64) C
	IsBlack() bool
	IsFinite() bool
	IsNonNegative() bool
	Luminance() float64
	RGB32() [3]float32
}

// Colors are the material colors of a microfacet BRDF.
type Colors[C Color[C]] struct {
	// F0 is the specular reflectance at normal incidence.
	F0 C
	// RhoSS is the subsurface albedo.
	RhoSS C
}

// Sample is a direction drawn from a BRDF.
type Sample[C Color[C]] struct {
	L   numerical.Vector
	PDF float64
	F   C
}

// IsEmpty reports whether the sample carries no direction.
func (s Sample[C]) IsEmpty() bool {
	return s.PDF <= 0
}

// Gray returns the color with every component equal to v.
func Gray[C Color[C]](v float64) C {
	var zero C
	return zero.AddScalar(v)
}

// ComputeMetalness derives the material colors of a surface color with
// the given metalness in [0, 1]. Metals reflect their color at normal
// incidence and have no diffuse term.
func ComputeMetalness[C Color[C]](c C, metalness float64) Colors[C] {
	var black C
	return Colors[C]{
		F0:    Gray[C](dielectricF0).Lerp(c, metalness),
		RhoSS: c.Lerp(black, metalness),
	}
}
