package cie

// Observer selects a CIE standard colorimetric observer.
type Observer uint8

const (
	// CIE1931 is the 2° standard observer.
	CIE1931 Observer = iota
	// CIE1964 is the 10° supplementary standard observer.
	CIE1964
)

// String returns the observer name.
func (o Observer) String() string {
	switch o {
	case CIE1931:
		return "CIE 1931"
	case CIE1964:
		return "CIE 1964"
	default:
		return "unknown observer"
	}
}

// Valid reports whether o is a known observer.
func (o Observer) Valid() bool {
	return o == CIE1931 || o == CIE1964
}

// X evaluates the x̄ matching function of the observer.
func (o Observer) X(w float64) float64 {
	if o == CIE1964 {
		return X64(w)
	}
	return X31(w)
}

// Y evaluates the ȳ matching function of the observer.
func (o Observer) Y(w float64) float64 {
	if o == CIE1964 {
		return Y64(w)
	}
	return Y31(w)
}

// Z evaluates the z̄ matching function of the observer.
func (o Observer) Z(w float64) float64 {
	if o == CIE1964 {
		return Z64(w)
	}
	return Z31(w)
}

// XIntegral integrates x̄ over [a, b].
func (o Observer) XIntegral(a, b float64) float64 {
	if o == CIE1964 {
		return X64Integral(a, b)
	}
	return X31Integral(a, b)
}

// YIntegral integrates ȳ over [a, b].
func (o Observer) YIntegral(a, b float64) float64 {
	if o == CIE1964 {
		return Y64Integral(a, b)
	}
	return Y31Integral(a, b)
}

// ZIntegral integrates z̄ over [a, b].
func (o Observer) ZIntegral(a, b float64) float64 {
	if o == CIE1964 {
		return Z64Integral(a, b)
	}
	return Z31Integral(a, b)
}
