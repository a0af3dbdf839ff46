package ggx

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/sampling"
)

// viewDirection returns a unit vector at the given cosine to n.
func viewDirection(n numerical.Vector, cosine float64) numerical.Vector {
	t := numerical.OrthogonalComplementOfUnitVector(n)[0]
	v := n.Mul(cosine)
	v.MultiplyAdd(math.Sqrt(1-cosine*cosine), t)
	return v
}

func TestD_Normalized(t *testing.T) {
	// The projected microfacet area equals the macrosurface area.
	for n := MinDimension; n <= MaxDimension; n++ {
		for _, alpha := range []float64{0.2, 0.5, 1} {
			f := func(theta float64) float64 {
				c, s := math.Cos(theta), math.Sin(theta)
				return D(n, c, alpha) * c * math.Pow(s, float64(n-2))
			}
			got := sampling.SphereArea(n-1) * numerical.Integrate(f, 0, math.Pi/2, 100000)
			if math.Abs(got-1) > 1e-4 {
				t.Errorf("N=%d alpha=%v: integral %v, want 1", n, alpha, got)
			}
		}
	}
}

func TestD_BelowHorizon(t *testing.T) {
	if got := D(3, 0, 0.5); got != 0 {
		t.Errorf("D(n·h = 0) = %v", got)
	}
	if got := D(4, -0.5, 0.5); got != 0 {
		t.Errorf("D(n·h < 0) = %v", got)
	}
	// With alpha = 1 the distribution is uniform: 1/K_N.
	if got, want := D(3, 0.3, 1), 1/math.Pi; math.Abs(got-want) > 1e-15 {
		t.Errorf("D(alpha = 1) = %v, want %v", got, want)
	}
}

func TestMaskingShadowing(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"lambda normal", Lambda(1, 0.7), 0},
		{"lambda 60°", Lambda(0.5, 1), 0.5},
		{"g1 normal", G1(1, 0.3), 1},
		{"g1 60°", G1(0.5, 1), 2.0 / 3},
		{"g2 normal", G2(1, 1, 0.5), 1},
		{"g2 60°", G2(0.5, 0.5, 1), 0.5},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVisibleNormals_Unit(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 1))
	for n := MinDimension; n <= 6; n++ {
		normal := sampling.UniformOnSphere(rng, n)
		for range 2000 {
			v := sampling.UniformOnHemisphere(rng, normal)
			alpha := 0.05 + 0.95*rng.Float64()
			h, l := VisibleNormalsHL(rng, normal, v, alpha)
			if !h.IsUnit() || !l.IsUnit() {
				t.Fatalf("N=%d: h %v, l %v are not unit", n, h, l)
			}
			if h.Dot(normal) < -1e-12 {
				t.Fatalf("N=%d: h below the surface", n)
			}
		}
	}
}

func TestVisibleNormals_NormalIncidence(t *testing.T) {
	// v = n exercises the degenerate tangent basis.
	rng := rand.New(rand.NewPCG(12, 1))
	normal := numerical.Axis(4, 3)
	for range 1000 {
		h := VisibleNormalsH(rng, normal, normal, 0.5)
		if !h.IsUnit() || !h.IsFinite() || h.Dot(normal) < 0 {
			t.Fatalf("h = %v", h)
		}
	}
}

func TestVisibleNormals_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("Monte-Carlo test")
	}

	// E[n·h] over sampled normals matches ∫ (n·h) pdf(h) dω, and the same
	// for the reflected directions.
	const count = 200000
	rng := rand.New(rand.NewPCG(13, 1))

	for n := 3; n <= 5; n++ {
		normal := sampling.UniformOnSphere(rng, n)
		for _, c := range []struct{ alpha, cosine float64 }{{0.5, 0.7}, {0.8, 0.4}} {
			v := viewDirection(normal, c.cosine)

			var sampledH, sampledL float64
			for range count {
				h, l := VisibleNormalsHL(rng, normal, v, c.alpha)
				sampledH += h.Dot(normal)
				sampledL += l.Dot(normal)
			}

			var integralH, integralL float64
			for range count {
				h := sampling.UniformOnHemisphere(rng, normal)
				nH := h.Dot(normal)
				integralH += nH * VisibleNormalsHPDF(n, c.cosine, nH, h.Dot(v), c.alpha)

				l := sampling.UniformOnSphere(rng, n)
				hl := v.Add(l).Normalize()
				integralL += l.Dot(normal) * VisibleNormalsLPDF(n, c.cosine, hl.Dot(normal), hl.Dot(v), c.alpha)
			}
			integralH *= sampling.SphereArea(n) / 2
			integralL *= sampling.SphereArea(n)

			if got, want := sampledH/count, integralH/count; math.Abs(got-want) > 0.02 {
				t.Errorf("N=%d %+v: E[n·h] = %v, integral %v", n, c, got, want)
			}
			if got, want := sampledL/count, integralL/count; math.Abs(got-want) > 0.02 {
				t.Errorf("N=%d %+v: E[n·l] = %v, integral %v", n, c, got, want)
			}
		}
	}
}

func BenchmarkVisibleNormalsHL(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	normal := numerical.Axis(3, 2)
	v := viewDirection(normal, 0.6)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		VisibleNormalsHL(rng, normal, v, 0.3)
	}
}
