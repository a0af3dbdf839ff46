package numerical

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"2x2", [][]float64{{3, 8}, {4, 6}}, -14},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"pivoting", [][]float64{{0, 1}, {1, 0}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Determinant(tt.rows); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrthogonalComplement_Cross(t *testing.T) {
	got := OrthogonalComplement([]Vector{NewVector(1, 0, 0), NewVector(0, 1, 0)})
	if !got.Approx(NewVector(0, 0, 1), 1e-12) {
		t.Errorf("complement of x, y = %v, want (0, 0, 1)", got)
	}
	got = OrthogonalComplement([]Vector{NewVector(1, 2, 3), NewVector(4, 5, 6)})
	if !got.Approx(NewVector(-3, 6, -3), 1e-12) {
		t.Errorf("complement = %v, want (-3, 6, -3)", got)
	}
}

func TestOrthogonalComplement_Orthogonal(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for n := 2; n <= 9; n++ {
		vectors := make([]Vector, n-1)
		for i := range vectors {
			vectors[i] = randomUnit(rng, n)
		}
		c := OrthogonalComplement(vectors)
		for i, v := range vectors {
			if d := c.Dot(v); math.Abs(d) > 1e-9 {
				t.Errorf("N=%d: complement·v[%d] = %v, want 0", n, i, d)
			}
		}
	}
}

func TestOrthogonalComplementOfUnitVector(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for n := 2; n <= 9; n++ {
		inputs := []Vector{Axis(n, 0), Axis(n, n-1), randomUnit(rng, n), randomUnit(rng, n)}
		for _, u := range inputs {
			basis := OrthogonalComplementOfUnitVector(u)
			if len(basis) != n-1 {
				t.Fatalf("N=%d: got %d vectors, want %d", n, len(basis), n-1)
			}
			for i, b := range basis {
				if !b.IsUnit() {
					t.Errorf("N=%d: basis[%d] = %v is not unit", n, i, b)
				}
				if d := b.Dot(u); math.Abs(d) > 1e-9 {
					t.Errorf("N=%d: basis[%d]·u = %v", n, i, d)
				}
				for j := range i {
					if d := b.Dot(basis[j]); math.Abs(d) > 1e-9 {
						t.Errorf("N=%d: basis[%d]·basis[%d] = %v", n, i, j, d)
					}
				}
			}
		}
	}
}
