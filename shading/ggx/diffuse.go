package ggx

import (
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
)

func pow5(v float64) float64 {
	v2 := v * v
	return v2 * v2 * v
}

// Diffuse is the Disney diffuse term without the subsurface part,
// weighted by the energy not reflected at the surface.
//
//	c (1 - f0) ρss / K_N
//	c = (1 + (fd90 - 1)(1 - n·l)^5)(1 + (fd90 - 1)(1 - n·v)^5)
//	fd90 = 2 roughness (h·l)²
func Diffuse[C shading.Color[C]](dimension int, f0, rhoSS C, roughness, nL, nV, hL float64) C {
	fd90 := 2 * roughness * hL * hL
	c := (1 + (fd90-1)*pow5(1-nL)) * (1 + (fd90-1)*pow5(1-nV))
	k := 1 / sampling.CosineHemisphereIntegral(dimension)
	return shading.Gray[C](1).Sub(f0).Mul(rhoSS).Scale(c * k)
}
