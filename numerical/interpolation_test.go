package numerical

import (
	"math"
	"testing"
)

func TestGrid1D(t *testing.T) {
	g, err := NewGrid1D([]float64{0, 10, 30})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 5},
		{0.5, 10},
		{0.75, 20},
		{1, 30},
		{2, 30},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := g.At(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestGrid1D_TooSmall(t *testing.T) {
	if _, err := NewGrid1D([]float64{1}); err == nil {
		t.Error("expected error for single value")
	}
}

func TestGrid2D(t *testing.T) {
	// f(x, y) = 2x + 4y sampled on a 3x5 grid is reproduced exactly.
	const rows, cols = 3, 5
	values := make([]float64, rows*cols)
	for i := range rows {
		for j := range cols {
			values[i*cols+j] = 2*float64(i)/(rows-1) + 4*float64(j)/(cols-1)
		}
	}
	g, err := NewGrid2D(rows, cols, values)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]float64{{0, 0}, {0.3, 0.7}, {1, 1}, {0.5, 0.125}, {0.99, 0.01}} {
		want := 2*p[0] + 4*p[1]
		if got := g.At(p[0], p[1]); math.Abs(got-want) > 1e-12 {
			t.Errorf("At(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}

	if row := g.Row(1); len(row) != cols || row[0] != 1 {
		t.Errorf("Row(1) = %v", row)
	}
}

func TestGrid2D_SizeMismatch(t *testing.T) {
	if _, err := NewGrid2D(2, 2, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for size mismatch")
	}
}

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"cubic", func(x float64) float64 { return x * x * x }, 0, 2, 4},
		{"sin", math.Sin, 0, math.Pi, 2},
		{"exp", math.Exp, -1, 1, math.E - 1/math.E},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Integrate(tt.f, tt.a, tt.b, 1000)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Integrate() = %v, want %v", got, tt.want)
			}
		})
	}
}
