package ggx

import (
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
)

// MultipleBounce approximates the energy lost by single scattering
// GGX.
//
//	F̄ R̄ / (K_N (1 - R̄)(1 - F̄(1 - R̄))) (1 - R(l))(1 - R(v))
//
// R is the F0 = 1 directional albedo and R̄ its cosine-weighted average.
// The term is zero when R̄ >= 1.
func MultipleBounce[C shading.Color[C]](dimension int, roughness float64, f0 C, nL, nV float64) C {
	var black C

	rAverage := F1AlbedoCosineWeightedAverage(dimension, roughness)
	if !(rAverage < 1) {
		return black
	}
	fAverage, err := FresnelCosineWeightedAverage(dimension, f0)
	if err != nil {
		return black
	}

	rl := F1Albedo(dimension, roughness, nL)
	rv := F1Albedo(dimension, roughness, nV)
	k := sampling.CosineHemisphereIntegral(dimension)

	denominator := shading.Gray[C](1).Sub(fAverage.Scale(1 - rAverage))
	s := rAverage * (1 - rl) * (1 - rv) / (k * (1 - rAverage))
	return fAverage.Div(denominator).Scale(s)
}
