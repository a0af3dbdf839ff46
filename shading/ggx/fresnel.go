package ggx

import (
	"fmt"
	"math"

	"github.com/gogpu/pbr/shading"
)

// Fresnel is the Schlick approximation of the Fresnel reflectance.
//
//	F = f0 + (1 - f0)(1 - h·l)^5
func Fresnel[C shading.Color[C]](f0 C, hL float64) C {
	t := 1 - hL
	t2 := t * t
	return f0.Lerp(shading.Gray[C](1), t2*t2*t)
}

// fresnelAverage returns the cosine-weighted average of (1 - cos)^5 over
// the hemisphere:
//
//	(N-1) ∫₀¹ (1-c)^5 c (1-c²)^((N-3)/2) dc
func fresnelAverage(dimension int) (float64, bool) {
	switch dimension {
	case 3:
		return 1.0 / 21, true
	case 4:
		return 43.0/7 - 495*math.Pi/256, true
	case 5:
		return 11.0 / 126, true
	case 6:
		return 283.0/63 - 715*math.Pi/512, true
	case 7:
		return 4.0 / 33, true
	case 8:
		return 359.0/99 - 2275*math.Pi/2048, true
	case 9:
		return 194.0 / 1287, true
	}
	return 0, false
}

// FresnelCosineWeightedAverage returns the cosine-weighted hemispherical
// average of Fresnel(f0, ·).
func FresnelCosineWeightedAverage[C shading.Color[C]](dimension int, f0 C) (C, error) {
	a, ok := fresnelAverage(dimension)
	if !ok {
		var black C
		return black, fmt.Errorf("ggx: fresnel average for dimension %d: %w", dimension, ErrUnsupportedDimension)
	}
	return f0.Lerp(shading.Gray[C](1), a), nil
}
