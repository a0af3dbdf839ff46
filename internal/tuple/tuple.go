// Package tuple implements the component-wise arithmetic shared by the
// color types. Every function works on equal-length slices; dst may alias
// any operand.
package tuple

import (
	"math"
	"strconv"
	"strings"
)

// Add stores a + b in dst.
func Add(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub stores a - b in dst.
func Sub(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul stores the component-wise product of a and b in dst.
func Mul(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div stores the component-wise quotient of a and b in dst.
func Div(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Scale stores a * s in dst.
func Scale(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// DivScalar stores a / s in dst.
func DivScalar(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// AddScalar stores a + s in dst.
func AddScalar(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

// MultiplyAdd adds a * s to dst.
func MultiplyAdd(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] += a[i] * s
	}
}

// Interpolate stores a + t(b - a) in dst.
func Interpolate(dst, a, b []float64, t float64) {
	for i := range dst {
		dst[i] = a[i] + t*(b[i]-a[i])
	}
}

// Clamp stores a clamped to [lo, hi] in dst. NaN becomes lo.
func Clamp(dst, a []float64, lo, hi float64) {
	for i := range dst {
		switch v := a[i]; {
		case v > hi:
			dst[i] = hi
		case v >= lo:
			dst[i] = v
		default:
			dst[i] = lo
		}
	}
}

// MaxN stores max(a, v) in dst. NaN becomes v.
func MaxN(dst, a []float64, v float64) {
	for i := range dst {
		if a[i] > v {
			dst[i] = a[i]
		} else {
			dst[i] = v
		}
	}
}

// Equal reports whether a and b are identical.
func Equal(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualToRelative reports whether every pair of components differs by
// at most rel relative to the larger magnitude.
func EqualToRelative(a, b []float64, rel float64) bool {
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		m := max(math.Abs(a[i]), math.Abs(b[i]))
		if !(math.Abs(a[i]-b[i])/m <= rel) {
			return false
		}
	}
	return true
}

// EqualToAbsolute reports whether every pair of components differs by
// at most abs.
func EqualToAbsolute(a, b []float64, abs float64) bool {
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if !(math.Abs(a[i]-b[i]) <= abs) {
			return false
		}
	}
	return true
}

// LessThan reports whether every component of a is at most the matching
// component of b, allowing a relative excess below rel.
func LessThan(a, b []float64, rel float64) bool {
	for i := range a {
		if a[i] <= b[i] {
			continue
		}
		m := max(math.Abs(a[i]), math.Abs(b[i]))
		if !(math.Abs(a[i]-b[i])/m < rel) {
			return false
		}
	}
	return true
}

// IsBlack reports whether no component is positive. NaN is not black.
func IsBlack(a []float64) bool {
	for _, v := range a {
		if !(v <= 0) {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component is finite.
func IsFinite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsNonNegative reports whether every component is >= 0.
func IsNonNegative(a []float64) bool {
	for _, v := range a {
		if !(v >= 0) {
			return false
		}
	}
	return true
}

// IsInRange reports whether every component is within [lo, hi].
func IsInRange(a []float64, lo, hi float64) bool {
	for _, v := range a {
		if !(v >= lo && v <= hi) {
			return false
		}
	}
	return true
}

// HasNaN reports whether any component is NaN.
func HasNaN(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Format renders a as name(v0, v1, ...) with the shortest exact digits.
func Format(name string, a []float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
