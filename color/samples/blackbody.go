package samples

import (
	"fmt"
	"math"
)

// Radiation constants in SI units (CODATA 2018).
const (
	planck    = 6.62607015e-34
	lightC    = 299792458.0
	boltzmann = 1.380649e-23

	// blackbodyReference is the wavelength, in nm, at which blackbody
	// spectra are normalized to 1.
	blackbodyReference = 560.0

	// IlluminantATemperature is the temperature of CIE illuminant A.
	IlluminantATemperature = 2856.0
)

// secondRadiation is c2 = hc/k in m·K.
const secondRadiation = planck * lightC / boltzmann

// wienDisplacement is Wien's constant in nm·K.
const wienDisplacement = 2.897771955e6

// maxLogRatio bounds the log of a normalized value so that the
// tabulation and its band averages stay finite.
const maxLogRatio = 600.0

// logPlanck returns the log of the spectral radiance of a blackbody at
// the wavelength in nm, up to a constant term.
func logPlanck(kelvin, nm float64) float64 {
	l := nm * 1e-9
	return -5*math.Log(l) - logExpm1(secondRadiation/(l*kelvin))
}

// logExpm1 returns log(e^x - 1) for x > 0 without overflowing.
func logExpm1(x float64) float64 {
	if x < 1 {
		return math.Log(math.Expm1(x))
	}
	return x + math.Log1p(-math.Exp(-x))
}

// Blackbody returns the spectrum of a blackbody radiator at the given
// temperature, normalized to 1 at 560 nm and averaged over count bins
// of [from, to). The radiator is tabulated at 1 nm before averaging.
//
// At very low temperatures the normalized spectrum spans more orders of
// magnitude than a float64 holds; such temperatures return
// ErrInvalidArgument.
func Blackbody(kelvin, from, to float64, count int) ([]float64, error) {
	if !(kelvin > 0) || math.IsInf(kelvin, 0) {
		return nil, fmt.Errorf("samples: temperature %v K: %w", kelvin, ErrInvalidArgument)
	}
	if err := checkRange(from, to, count); err != nil {
		return nil, err
	}
	if from <= 0 {
		return nil, fmt.Errorf("samples: blackbody range starts at %v nm: %w", from, ErrInvalidArgument)
	}

	lo, hi := max(math.Floor(from), 1), math.Ceil(to)
	ref := logPlanck(kelvin, blackbodyReference)

	// The radiance is unimodal in wavelength, so its maximum over the
	// tabulated range is at the peak clamped to the range.
	peak := min(max(wienDisplacement/kelvin, lo), hi)
	if d := logPlanck(kelvin, peak) - ref; !(d <= maxLogRatio) {
		return nil, fmt.Errorf("samples: %v K over [%v, %v] nm exceeds the float range: %w",
			kelvin, from, to, ErrInvalidArgument)
	}

	key := tableKey{from: from, to: to, count: count, param: kelvin, variant: variantBlackbody}
	return memoSpectrum("blackbody", key, func() []float64 {
		n := int(hi-lo) + 1
		waves := make([]float64, n)
		values := make([]float64, n)
		for i := range n {
			waves[i] = lo + float64(i)
			values[i] = math.Exp(logPlanck(kelvin, waves[i]) - ref)
		}
		return mustAverage(waves, values, from, to, count)
	}), nil
}

// BlackbodyA returns CIE standard illuminant A, a blackbody at 2856 K.
func BlackbodyA(from, to float64, count int) ([]float64, error) {
	return Blackbody(IlluminantATemperature, from, to, count)
}
