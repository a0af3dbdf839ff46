package cie

import "math"

// lobe is a Gaussian with separate widths left and right of the mean.
type lobe struct {
	amp, mean, t1, t2 float64
}

func (l lobe) value(w float64) float64 {
	t := l.t2
	if w < l.mean {
		t = l.t1
	}
	d := t * (w - l.mean)
	return l.amp * math.Exp(-0.5*d*d)
}

func (l lobe) integral(a, b float64) float64 {
	return l.amp * GIntegral(a, b, l.mean, l.t1, l.t2)
}

var (
	x31 = [...]lobe{
		{1.056, 599.8, 0.0264, 0.0323},
		{0.362, 442.0, 0.0624, 0.0374},
		{-0.065, 501.1, 0.0490, 0.0382},
	}
	y31 = [...]lobe{
		{0.821, 568.8, 0.0213, 0.0247},
		{0.286, 530.9, 0.0613, 0.0322},
	}
	z31 = [...]lobe{
		{1.217, 437.0, 0.0845, 0.0278},
		{0.681, 459.0, 0.0385, 0.0725},
	}
)

// logNormal is amp·exp(-k·ln((sign·w + c)/d)²), zero where the
// logarithm is undefined.
type logNormal struct {
	amp, k, c, d, sign float64
}

func (l logNormal) value(w float64) float64 {
	v := l.sign*w + l.c
	if v <= 0 {
		return 0
	}
	u := math.Log(v / l.d)
	return l.amp * math.Exp(-l.k*u*u)
}

// support returns the wavelengths where sign·w + c > 0.
func (l logNormal) support() (lo, hi float64) {
	if l.sign > 0 {
		return -l.c, math.Inf(1)
	}
	return math.Inf(-1), l.c
}

// integral substitutes u = ln((sign·w + c)/d) and completes the square:
//
//	∫ exp(-k·u²) d·e^u du = d·e^(1/4k) ∫ exp(-k(u - 1/2k)²) du
func (l logNormal) integral(a, b float64) float64 {
	lo, hi := l.support()
	a, b = max(a, lo), min(b, hi)
	if !(a < b) {
		return 0
	}

	s := math.Sqrt(l.k)
	mu := 1 / (2 * l.k)
	u := func(w float64) float64 {
		v := l.sign*w + l.c
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log(v / l.d)
	}
	ua, ub := u(a), u(b)

	scale := l.amp * l.sign * l.d * math.Exp(1/(4*l.k)) * math.SqrtPi / (2 * s)
	return scale * (math.Erf(s*(ub-mu)) - math.Erf(s*(ua-mu)))
}

var (
	x64 = [...]logNormal{
		{0.398, 1250, 570.1, 1014, 1},
		{1.132, 234, 1338, 743.5, -1},
	}
	z64 = logNormal{2.060, 32, -265.8, 180.4, 1}
)

const (
	y64Amp  = 1.011
	y64Mean = 556.1
	y64T    = 1 / 46.14
)

// X31 is the CIE 1931 x̄ matching function.
func X31(w float64) float64 {
	return x31[0].value(w) + x31[1].value(w) + x31[2].value(w)
}

// Y31 is the CIE 1931 ȳ matching function.
func Y31(w float64) float64 {
	return y31[0].value(w) + y31[1].value(w)
}

// Z31 is the CIE 1931 z̄ matching function.
func Z31(w float64) float64 {
	return z31[0].value(w) + z31[1].value(w)
}

// X64 is the CIE 1964 x̄ matching function.
func X64(w float64) float64 {
	return x64[0].value(w) + x64[1].value(w)
}

// Y64 is the CIE 1964 ȳ matching function.
func Y64(w float64) float64 {
	d := y64T * (w - y64Mean)
	return y64Amp * math.Exp(-0.5*d*d)
}

// Z64 is the CIE 1964 z̄ matching function.
func Z64(w float64) float64 {
	return z64.value(w)
}

// GIntegral integrates the unit piecewise Gaussian with mean m, width
// 1/t1 below m and 1/t2 above it, over [a, b].
func GIntegral(a, b, m, t1, t2 float64) float64 {
	if !(a < b) {
		return 0
	}
	if b <= m {
		return gaussianIntegral(a, b, m, t1)
	}
	if a >= m {
		return gaussianIntegral(a, b, m, t2)
	}
	return gaussianIntegral(a, m, m, t1) + gaussianIntegral(m, b, m, t2)
}

// gaussianIntegral integrates exp(-½(t(w-m))²) over [a, b].
func gaussianIntegral(a, b, m, t float64) float64 {
	const sqrtHalfPi = 1.2533141373155002512078826424055226 // √(π/2)
	return sqrtHalfPi / t * (math.Erf(t*(b-m)/math.Sqrt2) - math.Erf(t*(a-m)/math.Sqrt2))
}

// X31Integral integrates X31 over [a, b].
func X31Integral(a, b float64) float64 {
	return x31[0].integral(a, b) + x31[1].integral(a, b) + x31[2].integral(a, b)
}

// Y31Integral integrates Y31 over [a, b].
func Y31Integral(a, b float64) float64 {
	return y31[0].integral(a, b) + y31[1].integral(a, b)
}

// Z31Integral integrates Z31 over [a, b].
func Z31Integral(a, b float64) float64 {
	return z31[0].integral(a, b) + z31[1].integral(a, b)
}

// X64Integral integrates X64 over [a, b].
func X64Integral(a, b float64) float64 {
	if !(a < b) {
		return 0
	}
	return x64[0].integral(a, b) + x64[1].integral(a, b)
}

// Y64Integral integrates Y64 over [a, b].
func Y64Integral(a, b float64) float64 {
	if !(a < b) {
		return 0
	}
	return y64Amp * gaussianIntegral(a, b, y64Mean, y64T)
}

// Z64Integral integrates Z64 over [a, b].
func Z64Integral(a, b float64) float64 {
	if !(a < b) {
		return 0
	}
	return z64.integral(a, b)
}
