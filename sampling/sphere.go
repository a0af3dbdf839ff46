// Package sampling generates random directions on and inside
// N-dimensional spheres and provides the matching densities.
//
// All samplers take a caller-owned *rand.Rand. A *rand.Rand is not safe
// for concurrent use, so each goroutine needs its own generator.
package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/pbr/numerical"
)

// rejectionMaxDimension is the largest ball dimension sampled by
// rejection from the enclosing cube. The acceptance rate drops quickly
// above it.
const rejectionMaxDimension = 5

// UniformInBall returns a point distributed uniformly inside the unit
// ball of the given dimension together with its squared length.
func UniformInBall(rng *rand.Rand, dimension int) (numerical.Vector, float64) {
	v := make(numerical.Vector, dimension)

	if dimension <= rejectionMaxDimension {
		for {
			for i := range v {
				v[i] = 2*rng.Float64() - 1
			}
			if s := v.LengthSq(); s < 1 && s > 0 {
				return v, s
			}
		}
	}

	for {
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		s := v.LengthSq()
		if s == 0 {
			continue
		}
		r := math.Pow(rng.Float64(), 1/float64(dimension))
		v = v.Mul(r / math.Sqrt(s))
		return v, r * r
	}
}

// UniformOnSphere returns a unit vector distributed uniformly on the
// sphere of the given dimension.
func UniformOnSphere(rng *rand.Rand, dimension int) numerical.Vector {
	v := make(numerical.Vector, dimension)
	for {
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		if s := v.LengthSq(); s > 0 {
			return v.Div(math.Sqrt(s))
		}
	}
}

// UniformOnHemisphere returns a unit vector distributed uniformly on the
// hemisphere around the unit normal.
func UniformOnHemisphere(rng *rand.Rand, normal numerical.Vector) numerical.Vector {
	v := UniformOnSphere(rng, len(normal))
	if v.Dot(normal) < 0 {
		return v.Neg()
	}
	return v
}

// UniformOnHemispherePDF returns the density of UniformOnHemisphere.
func UniformOnHemispherePDF(dimension int) float64 {
	return 2 / SphereArea(dimension)
}

// CosineOnHemisphere returns a unit vector around the unit normal with
// density proportional to the cosine of the angle to the normal.
// A point uniform in the tangent ball is lifted onto the hemisphere.
func CosineOnHemisphere(rng *rand.Rand, normal numerical.Vector) numerical.Vector {
	n := len(normal)
	basis := numerical.OrthogonalComplementOfUnitVector(normal)
	t, lengthSq := UniformInBall(rng, n-1)

	res := normal.Mul(math.Sqrt(max(0, 1-lengthSq)))
	for i, b := range basis {
		res.MultiplyAdd(t[i], b)
	}
	return res.Normalize()
}

// CosineOnHemispherePDF returns the density of CosineOnHemisphere for a
// direction with the given cosine to the normal.
func CosineOnHemispherePDF(dimension int, cosine float64) float64 {
	if cosine <= 0 {
		return 0
	}
	return cosine / CosineHemisphereIntegral(dimension)
}

// ReflectedPDF converts a density of half vectors into the density of
// the directions reflected about them. hl is the cosine between the half
// vector and the reflected direction.
func ReflectedPDF(dimension int, pdfH, hl float64) float64 {
	if pdfH <= 0 || hl <= 0 {
		return 0
	}
	return pdfH / (math.Ldexp(1, dimension-1) * math.Pow(hl, float64(dimension-2)))
}
