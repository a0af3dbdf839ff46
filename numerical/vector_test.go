package numerical

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestVector_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vector
		expect Vector
	}{
		{"add", NewVector(1, 2, 3).Add(NewVector(4, 5, 6)), NewVector(5, 7, 9)},
		{"sub", NewVector(5, 7, 9).Sub(NewVector(4, 5, 6)), NewVector(1, 2, 3)},
		{"mul", NewVector(1, -2, 3, 4).Mul(2), NewVector(2, -4, 6, 8)},
		{"div", NewVector(2, -4, 6).Div(2), NewVector(1, -2, 3)},
		{"neg", NewVector(1, -2).Neg(), NewVector(-1, 2)},
		{"lerp", NewVector(0, 10).Lerp(NewVector(10, 20), 0.25), NewVector(2.5, 12.5)},
		{"max", NewVector(-1, 0.5, 2).MaxN(0), NewVector(0, 0.5, 2)},
		{"normalize", NewVector(3, 0, 4, 0).Normalize(), NewVector(0.6, 0, 0.8, 0)},
		{"normalize zero", Zero(3).Normalize(), Zero(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVector_MultiplyAdd(t *testing.T) {
	v := NewVector(1, 1, 1)
	v.MultiplyAdd(2, NewVector(1, 2, 3))
	if !v.Approx(NewVector(3, 5, 7), 1e-12) {
		t.Errorf("MultiplyAdd = %v, want (3, 5, 7)", v)
	}
}

func TestVector_Predicates(t *testing.T) {
	if !NewVector(0, 0, 1).IsUnit() {
		t.Error("(0, 0, 1) should be unit")
	}
	if NewVector(0, 0, 1.1).IsUnit() {
		t.Error("(0, 0, 1.1) should not be unit")
	}
	if NewVector(1, math.NaN()).IsFinite() {
		t.Error("vector with NaN should not be finite")
	}
	if NewVector(1, math.Inf(1)).IsFinite() {
		t.Error("vector with Inf should not be finite")
	}
	if !Zero(4).IsZero() {
		t.Error("Zero(4) should be zero")
	}
	if got := NewVector(1, 2, 3).Dot(NewVector(4, -5, 6)); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVector_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on dimension mismatch")
		}
	}()
	_ = NewVector(1, 2).Add(NewVector(1, 2, 3))
}

func TestVector_String(t *testing.T) {
	if got := NewVector(1, 0.5, -2).String(); got != "(1, 0.5, -2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestReflect(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 3; n <= 6; n++ {
		for range 100 {
			v := randomUnit(rng, n)
			h := randomUnit(rng, n)
			l := Reflect(v, h)
			if !l.IsUnit() {
				t.Fatalf("N=%d: reflected vector %v is not unit", n, l)
			}
			if math.Abs(l.Dot(h)-v.Dot(h)) > 1e-12 {
				t.Fatalf("N=%d: angle with h is not preserved", n)
			}
			if !l.Add(v).Approx(h.Mul(2*v.Dot(h)), 1e-12) {
				t.Fatalf("N=%d: l + v is not along h", n)
			}
		}
	}
}

func randomUnit(rng *rand.Rand, n int) Vector {
	for {
		v := make(Vector, n)
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		if l := v.Length(); l > 1e-6 {
			return v.Div(l)
		}
	}
}
