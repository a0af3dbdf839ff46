// Package numerical provides the runtime-dimension vector type and the
// small set of linear algebra, interpolation and integration helpers used
// by the shading code.
//
// A Vector is a plain []float64. Every operation that returns a Vector
// allocates a new one unless its documentation says it works in place.
// Binary operations require operands of equal dimension and panic
// otherwise, like indexing out of range.
package numerical

import (
	"fmt"
	"math"
	"strings"
)

// unitTolerance bounds |‖v‖² - 1| for IsUnit.
const unitTolerance = 1e-6

// Vector is an N-dimensional vector of float64 components.
type Vector []float64

// NewVector returns a vector holding a copy of the given components.
func NewVector(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)
	return v
}

// Zero returns the zero vector of dimension n.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Axis returns the unit vector of dimension n along coordinate axis i.
func Axis(n, i int) Vector {
	v := make(Vector, n)
	v[i] = 1
	return v
}

// Dimension returns the number of components.
func (v Vector) Dimension() int {
	return len(v)
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return NewVector(v...)
}

func mustMatch(v, w Vector) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("numerical: dimension mismatch %d != %d", len(v), len(w)))
	}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	mustMatch(v, w)
	res := make(Vector, len(v))
	for i := range v {
		res[i] = v[i] + w[i]
	}
	return res
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	mustMatch(v, w)
	res := make(Vector, len(v))
	for i := range v {
		res[i] = v[i] - w[i]
	}
	return res
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	res := make(Vector, len(v))
	for i := range v {
		res[i] = v[i] * s
	}
	return res
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float64) Vector {
	res := make(Vector, len(v))
	for i := range v {
		res[i] = v[i] / s
	}
	return res
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	res := make(Vector, len(v))
	for i := range v {
		res[i] = -v[i]
	}
	return res
}

// MultiplyAdd adds s·w to v in place.
func (v Vector) MultiplyAdd(s float64, w Vector) {
	mustMatch(v, w)
	for i := range v {
		v[i] += s * w[i]
	}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	mustMatch(v, w)
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Dot returns the dot product of two vectors.
func Dot(v, w Vector) float64 {
	return v.Dot(w)
}

// LengthSq returns the squared length of the vector.
func (v Vector) LengthSq() float64 {
	var sum float64
	for _, c := range v {
		sum += c * c
	}
	return sum
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return make(Vector, len(v))
	}
	return v.Div(length)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	mustMatch(v, w)
	res := make(Vector, len(v))
	for i := range v {
		res[i] = v[i] + (w[i]-v[i])*t
	}
	return res
}

// MaxN returns the component-wise maximum of v and the scalar s.
func (v Vector) MaxN(s float64) Vector {
	res := make(Vector, len(v))
	for i := range v {
		res[i] = max(v[i], s)
	}
	return res
}

// IsZero reports whether all components are zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsFinite reports whether all components are finite.
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// IsUnit reports whether the vector has unit length.
func (v Vector) IsUnit() bool {
	return math.Abs(v.LengthSq()-1) <= unitTolerance
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-w[i]) >= epsilon {
			return false
		}
	}
	return true
}

// String formats the vector as "(x, y, ...)".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", c)
	}
	b.WriteByte(')')
	return b.String()
}

// Lerp interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
