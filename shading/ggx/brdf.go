package ggx

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
)

// Supported dimensions.
const (
	MinDimension = 3
	MaxDimension = 9
)

// BRDF is the GGX specular BRDF combined with multiple bounce and
// diffuse terms. Sampling mixes visible normals and the cosine-weighted
// hemisphere with equal probability.
//
// A BRDF is immutable and safe for concurrent use.
type BRDF[C shading.Color[C]] struct {
	dimension int
	ggxOnly   bool
}

// NewBRDF returns a BRDF for the given dimension.
func NewBRDF[C shading.Color[C]](dimension int, opts ...Option) (*BRDF[C], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = pbr.Logger()
	}

	if dimension < MinDimension || dimension > MaxDimension {
		return nil, fmt.Errorf("ggx: dimension %d not in [%d, %d]: %w",
			dimension, MinDimension, MaxDimension, ErrUnsupportedDimension)
	}
	if !o.ggxOnly && !HasF1Albedo(dimension) {
		return nil, fmt.Errorf("ggx: no albedo table for dimension %d: %w", dimension, ErrUnsupportedDimension)
	}

	o.logger.Debug("ggx: brdf created", "dimension", dimension, "ggx_only", o.ggxOnly)

	return &BRDF[C]{
		dimension: dimension,
		ggxOnly:   o.ggxOnly,
	}, nil
}

// Dimension returns the dimension of the space.
func (b *BRDF[C]) Dimension() int {
	return b.dimension
}

// GGXOnly reports whether the BRDF is restricted to the GGX term.
func (b *BRDF[C]) GGXOnly() bool {
	return b.ggxOnly
}

func (b *BRDF[C]) f(roughness float64, colors shading.Colors[C], n, v, l numerical.Vector) C {
	h := v.Add(l).Normalize()

	nL := n.Dot(l)
	nV := n.Dot(v)
	nH := n.Dot(h)
	hL := h.Dot(l)

	spec := Specular(b.dimension, roughness, colors.F0, nV, nL, nH, hL)
	if b.ggxOnly {
		return spec
	}

	multiple := MultipleBounce(b.dimension, roughness, colors.F0, nL, nV)
	diffuse := Diffuse(b.dimension, colors.F0, colors.RhoSS, roughness, nL, nV, hL)
	return spec.Add(multiple).Add(diffuse)
}

func (b *BRDF[C]) pdf(alpha float64, n, v, l numerical.Vector) float64 {
	h := v.Add(l).Normalize()
	pdfGGX := VisibleNormalsLPDF(b.dimension, n.Dot(v), n.Dot(h), h.Dot(l), alpha)
	if b.ggxOnly {
		return pdfGGX
	}
	pdfCosine := sampling.CosineOnHemispherePDF(b.dimension, n.Dot(l))
	return 0.5 * (pdfCosine + pdfGGX)
}

// F returns the BRDF value. It is black when v or l is below the
// surface.
func (b *BRDF[C]) F(roughness float64, colors shading.Colors[C], n, v, l numerical.Vector) C {
	if n.Dot(v) <= 0 || n.Dot(l) <= 0 {
		var black C
		return black
	}
	return b.f(roughness, colors, n, v, l)
}

// PDF returns the density with which SampleF returns l.
func (b *BRDF[C]) PDF(roughness float64, n, v, l numerical.Vector) float64 {
	if n.Dot(v) <= 0 {
		return 0
	}
	return b.pdf(roughness*roughness, n, v, l)
}

// SampleF samples a light direction for the view direction v and
// returns it with its density and the BRDF value. The sample is empty
// when v is below the surface or no direction could be drawn. The value
// is black when the direction is below the surface.
func (b *BRDF[C]) SampleF(rng *rand.Rand, roughness float64, colors shading.Colors[C], n, v numerical.Vector) shading.Sample[C] {
	var empty shading.Sample[C]
	if n.Dot(v) <= 0 {
		return empty
	}

	alpha := roughness * roughness

	var l numerical.Vector
	if b.ggxOnly || rng.IntN(2) == 0 {
		_, l = VisibleNormalsHL(rng, n, v, alpha)
	} else {
		l = sampling.CosineOnHemisphere(rng, n)
	}

	pdf := b.pdf(alpha, n, v, l)
	if !(pdf > 0) {
		return empty
	}
	if n.Dot(l) <= 0 {
		return shading.Sample[C]{L: l, PDF: pdf}
	}
	return shading.Sample[C]{L: l, PDF: pdf, F: b.f(roughness, colors, n, v, l)}
}

// Material is a BRDF bound to a roughness and material colors.
type Material[C shading.Color[C]] struct {
	brdf      *BRDF[C]
	roughness float64
	colors    shading.Colors[C]
}

// Material binds the BRDF to material parameters.
func (b *BRDF[C]) Material(roughness float64, colors shading.Colors[C]) Material[C] {
	return Material[C]{brdf: b, roughness: roughness, colors: colors}
}

// Roughness returns the bound roughness.
func (m Material[C]) Roughness() float64 { return m.roughness }

// Colors returns the bound material colors.
func (m Material[C]) Colors() shading.Colors[C] { return m.colors }

// F returns the BRDF value for the bound material.
func (m Material[C]) F(n, v, l numerical.Vector) C {
	return m.brdf.F(m.roughness, m.colors, n, v, l)
}

// PDF returns the sampling density for the bound material.
func (m Material[C]) PDF(n, v, l numerical.Vector) float64 {
	return m.brdf.PDF(m.roughness, n, v, l)
}

// SampleF samples the BRDF for the bound material.
func (m Material[C]) SampleF(rng *rand.Rand, n, v numerical.Vector) shading.Sample[C] {
	return m.brdf.SampleF(rng, m.roughness, m.colors, n, v)
}
