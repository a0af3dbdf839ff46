// Package compute estimates integrals of BRDFs over the hemisphere by
// Monte-Carlo sampling.
package compute

import (
	"context"
	"math/rand/v2"

	"github.com/gogpu/pbr/internal/parallel"
	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
)

// BRDF is a BRDF with fixed material parameters.
type BRDF[C shading.Color[C]] interface {
	F(n, v, l numerical.Vector) C
	PDF(n, v, l numerical.Vector) float64
	SampleF(rng *rand.Rand, n, v numerical.Vector) shading.Sample[C]
}

// DirectionalAlbedoUniform estimates the directional albedo for the view
// direction v by uniform sampling of the hemisphere.
func DirectionalAlbedoUniform[C shading.Color[C]](brdf BRDF[C], n, v numerical.Vector, count int, rng *rand.Rand) C {
	var sum C
	if count <= 0 {
		return sum
	}

	pdf := sampling.UniformOnHemispherePDF(len(n))
	for range count {
		l := sampling.UniformOnHemisphere(rng, n)
		nL := n.Dot(l)
		if nL <= 0 {
			continue
		}
		sum = sum.MultiplyAdd(brdf.F(n, v, l), nL/pdf)
	}
	return sum.Scale(1 / float64(count))
}

// DirectionalAlbedoImportance estimates the directional albedo for the
// view direction v by sampling the BRDF.
func DirectionalAlbedoImportance[C shading.Color[C]](brdf BRDF[C], n, v numerical.Vector, count int, rng *rand.Rand) C {
	var sum C
	if count <= 0 {
		return sum
	}

	for range count {
		s := brdf.SampleF(rng, n, v)
		if s.IsEmpty() || s.F.IsBlack() {
			continue
		}
		nL := n.Dot(s.L)
		if nL <= 0 {
			continue
		}
		sum = sum.MultiplyAdd(s.F, nL/s.PDF)
	}
	return sum.Scale(1 / float64(count))
}

// DirectionalPDFIntegral estimates the integral of the BRDF density over
// the sphere for the view direction v. It is 1 for a normalized density.
func DirectionalPDFIntegral[C shading.Color[C]](brdf BRDF[C], n, v numerical.Vector, count int, rng *rand.Rand) float64 {
	if count <= 0 {
		return 0
	}

	area := sampling.SphereArea(len(n))
	sum := 0.0
	for range count {
		l := sampling.UniformOnSphere(rng, len(n))
		sum += brdf.PDF(n, v, l)
	}
	return sum * area / float64(count)
}

// ParallelDirectionalAlbedoImportance splits DirectionalAlbedoImportance
// across the pool. Chunk i uses a PCG generator seeded with (seed, i),
// so the result depends only on seed and the number of workers.
func ParallelDirectionalAlbedoImportance[C shading.Color[C]](ctx context.Context, pool *parallel.WorkerPool, brdf BRDF[C], n, v numerical.Vector, count int, seed uint64) (C, error) {
	var sum C

	chunks := parallel.Chunks(count, pool.Workers())
	partial, err := parallel.Map(ctx, pool, len(chunks), func(i int) C {
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		return DirectionalAlbedoImportance(brdf, n, v, chunks[i], rng).Scale(float64(chunks[i]))
	})
	if err != nil {
		return sum, err
	}

	for _, p := range partial {
		sum = sum.Add(p)
	}
	if count > 0 {
		sum = sum.Scale(1 / float64(count))
	}
	return sum, nil
}
