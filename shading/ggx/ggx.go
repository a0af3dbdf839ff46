package ggx

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
)

// planeUnitVector returns the first N-1 components of v normalized, or
// false when they are all zero.
func planeUnitVector(v numerical.Vector) (numerical.Vector, bool) {
	p := numerical.NewVector(v[:len(v)-1]...)
	s := p.LengthSq()
	if !(s > 0) {
		return nil, false
	}
	return p.Div(math.Sqrt(s)), true
}

// visibleBasis returns N-1 orthonormal vectors completing vh. The first
// N-2 lie in the tangent plane; the last one has a non-negative up
// component.
func visibleBasis(vh numerical.Vector) []numerical.Vector {
	n := len(vh)
	res := make([]numerical.Vector, n-1)

	if p, ok := planeUnitVector(vh); ok {
		for i, b := range numerical.OrthogonalComplementOfUnitVector(p) {
			res[i] = append(b, 0)
		}
	} else {
		for i := range n - 2 {
			res[i] = numerical.Axis(n, i)
		}
	}

	res[n-2] = vh
	last := numerical.OrthogonalComplement(res).Normalize()
	if last[n-1] < 0 {
		last = last.Neg()
	}
	res[n-2] = last
	return res
}

// visibleNormal samples a normal of the visible-normal distribution in
// the local frame, where the surface normal is the last axis.
func visibleNormal(rng *rand.Rand, ve numerical.Vector, alpha float64) numerical.Vector {
	n := len(ve)

	// Stretch to the hemisphere configuration.
	vh := ve.Clone()
	for i := range n - 1 {
		vh[i] *= alpha
	}
	vh = vh.Normalize()

	basis := visibleBasis(vh)

	// Projected area.
	t, _ := sampling.UniformInBall(rng, n-1)
	s := 0.5 * (1 + vh[n-1])
	sum := 0.0
	for i := range n - 2 {
		sum += t[i] * t[i]
	}
	t[n-2] = numerical.Lerp(math.Sqrt(max(0, 1-sum)), t[n-2], s)

	// Reprojection onto the hemisphere.
	nh := vh.Mul(math.Sqrt(max(0, 1-t.LengthSq())))
	for i, b := range basis {
		nh.MultiplyAdd(t[i], b)
	}

	// Back to the ellipsoid configuration.
	for i := range n - 1 {
		nh[i] *= alpha
	}
	nh[n-1] = max(0, nh[n-1])
	return nh.Normalize()
}

// VisibleNormalsH samples a microfacet normal from the distribution of
// normals visible from v.
func VisibleNormalsH(rng *rand.Rand, normal, v numerical.Vector, alpha float64) numerical.Vector {
	n := len(normal)
	basis := numerical.OrthogonalComplementOfUnitVector(normal)

	ve := make(numerical.Vector, n)
	for i, b := range basis {
		ve[i] = v.Dot(b)
	}
	ve[n-1] = v.Dot(normal)

	ne := visibleNormal(rng, ve, alpha)

	res := normal.Mul(ne[n-1])
	for i, b := range basis {
		res.MultiplyAdd(ne[i], b)
	}
	return res
}

// VisibleNormalsHL samples a visible normal h and returns it with the
// direction l obtained by reflecting v about it.
func VisibleNormalsHL(rng *rand.Rand, normal, v numerical.Vector, alpha float64) (h, l numerical.Vector) {
	h = VisibleNormalsH(rng, normal, v, alpha)
	return h, numerical.Reflect(v, h)
}

// D is the GGX normal distribution in the given dimension.
//
//	D = α² / (K_N (1 + (n·h)²(α² - 1))^((N+1)/2))
func D(dimension int, nH, alpha float64) float64 {
	if !(nH > 0) {
		return 0
	}
	alpha2 := alpha * alpha
	v := 1 + nH*nH*(alpha2-1)
	return alpha2 / (sampling.CosineHemisphereIntegral(dimension) * math.Pow(v, 0.5*float64(dimension+1)))
}

// Lambda is the Smith Λ function of GGX.
func Lambda(nV, alpha float64) float64 {
	nV2 := nV * nV
	t := alpha * alpha * (1 - nV2) / nV2
	return (math.Sqrt(1+t) - 1) / 2
}

// G1 is the Smith masking function.
func G1(nV, alpha float64) float64 {
	return 1 / (1 + Lambda(nV, alpha))
}

// G2 is the height-correlated masking-shadowing function.
func G2(nV, nL, alpha float64) float64 {
	return 1 / (1 + Lambda(nV, alpha) + Lambda(nL, alpha))
}

// VisibleNormalsHPDF is the density of VisibleNormalsH.
func VisibleNormalsHPDF(dimension int, nV, nH, hV, alpha float64) float64 {
	if nV > 0 && nH > 0 && hV > 0 {
		return G1(nV, alpha) * hV * D(dimension, nH, alpha) / nV
	}
	return 0
}

// VisibleNormalsLPDF is the density of the reflected direction returned
// by VisibleNormalsHL.
func VisibleNormalsLPDF(dimension int, nV, nH, hV, alpha float64) float64 {
	return sampling.ReflectedPDF(dimension, VisibleNormalsHPDF(dimension, nV, nH, hV, alpha), hV)
}

// Specular is the GGX specular term with Schlick Fresnel.
//
//	F D G2 / (n·v n·l 2^(N-1) (h·l)^(N-3))
func Specular[C shading.Color[C]](dimension int, roughness float64, f0 C, nV, nL, nH, hL float64) C {
	var black C
	if !(nV > 0 && nL > 0 && hL > 0) {
		return black
	}
	alpha := roughness * roughness
	d := D(dimension, nH, alpha)
	g2 := G2(nV, nL, alpha)
	divisor := nV * nL * math.Ldexp(1, dimension-1) * math.Pow(hL, float64(dimension-3))
	return Fresnel(f0, hL).Scale(d * g2 / divisor)
}
