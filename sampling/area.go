package sampling

import (
	"math"

	"github.com/gogpu/pbr/numerical"
)

// SphereArea returns the surface area of the unit sphere embedded in the
// given dimension: 2π^(N/2) / Γ(N/2).
func SphereArea(dimension int) float64 {
	n := float64(dimension)
	return 2 * math.Pow(math.Pi, n/2) / math.Gamma(n/2)
}

// CosineHemisphereIntegral returns K_N, the integral of the cosine to
// the normal over the unit hemisphere: π^((N-1)/2) / Γ((N+1)/2).
// It equals the volume of the unit ball of dimension N-1.
func CosineHemisphereIntegral(dimension int) float64 {
	n := float64(dimension)
	return math.Pow(math.Pi, (n-1)/2) / math.Gamma((n+1)/2)
}

// CosineWeightedAverageByCosine averages f(cos θ) over the hemisphere
// with cosine weighting:
//
//	(N-1) ∫₀¹ f(c) c (1-c²)^((N-3)/2) dc
//
// The integral is evaluated in θ so the integrand stays smooth at c = 1.
func CosineWeightedAverageByCosine(dimension int, f func(cosine float64) float64, count int) float64 {
	n := float64(dimension)
	p := n - 2
	g := func(theta float64) float64 {
		c, s := math.Cos(theta), math.Sin(theta)
		return f(c) * c * math.Pow(s, p)
	}
	return (n - 1) * numerical.Integrate(g, 0, math.Pi/2, count)
}
