// Package pbr is a physically based rendering toolkit for color and
// microfacet shading.
//
// # Overview
//
// pbr provides the color and shading math a spectral path tracer needs:
// RGB and sampled-spectrum color values with conversions through CIE XYZ,
// tabulated illuminants (daylight, blackbody) and reflectance bases, and a
// GGX microfacet BRDF that works in any dimension from 3 to 9.
//
// # Quick Start
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/gogpu/pbr/color"
//	    "github.com/gogpu/pbr/numerical"
//	    "github.com/gogpu/pbr/shading"
//	    "github.com/gogpu/pbr/shading/ggx"
//	)
//
//	brdf, err := ggx.NewBRDF[color.Spectrum](3)
//	if err != nil {
//	    return err
//	}
//	colors := shading.ComputeMetalness(color.NewSpectrum(0.8, 0.3, 0.1), 0.2)
//	n := numerical.NewVector(0, 0, 1)
//	v := numerical.NewVector(0, 0.6, 0.8)
//	rng := rand.New(rand.NewPCG(1, 2))
//	s := brdf.SampleF(rng, 0.4, colors, n, v)
//
// # Architecture
//
// The module is organized into:
//   - numerical, sampling: runtime-dimension vectors and sphere sampling
//   - color, color/cie, color/samples: color values, matching functions
//     and spectral tables
//   - shading, shading/ggx: material parameters and the GGX BRDF
//   - shading/compute, shading/ggx/table: Monte-Carlo estimators and the
//     offline albedo table generator
//   - preview: in-memory material preview rasters
//
// # Logging
//
// All packages share one [log/slog] logger configured with [SetLogger].
// The default logger discards everything.
package pbr
