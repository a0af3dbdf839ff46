package samples

import (
	"fmt"
)

// Supported correlated color temperatures of the CIE daylight locus.
const (
	DaylightMinCCT = 4000.0
	DaylightMaxCCT = 25000.0
)

// Wavelength support of the daylight tables.
const (
	DaylightMinWavelength = daylightMin
	DaylightMaxWavelength = daylightMin + daylightStep*(daylightCount-1)
)

var daylightWaves = func() []float64 {
	w := make([]float64, daylightCount)
	for i := range w {
		w[i] = daylightMin + daylightStep*float64(i)
	}
	return w
}()

// DaylightD65 returns CIE standard illuminant D65 relative to 100 at
// 560 nm, averaged over count bins of [from, to).
func DaylightD65(from, to float64, count int) ([]float64, error) {
	if err := checkRange(from, to, count); err != nil {
		return nil, err
	}
	key := tableKey{from: from, to: to, count: count, variant: variantD65}
	return memoSpectrum("D65", key, func() []float64 {
		return mustAverage(daylightWaves, daylightD65[:], from, to, count)
	}), nil
}

// Daylight returns the CIE daylight spectrum of the given correlated
// color temperature in kelvin, averaged over count bins of [from, to).
// The temperature must be within [DaylightMinCCT, DaylightMaxCCT].
func Daylight(cct, from, to float64, count int) ([]float64, error) {
	m1, m2, err := daylightCoefficients(cct)
	if err != nil {
		return nil, err
	}
	if err := checkRange(from, to, count); err != nil {
		return nil, err
	}

	key := tableKey{from: from, to: to, count: count, param: cct, variant: variantDaylight}
	return memoSpectrum("daylight", key, func() []float64 {
		s := make([]float64, daylightCount)
		for i := range s {
			s[i] = daylightS0[i] + m1*daylightS1[i] + m2*daylightS2[i]
		}
		return mustAverage(daylightWaves, s, from, to, count)
	}), nil
}

// daylightCoefficients returns the weights of S1 and S2 for cct.
func daylightCoefficients(cct float64) (m1, m2 float64, err error) {
	t1 := 1e3 / cct
	t2 := 1e6 / (cct * cct)
	t3 := 1e9 / (cct * cct * cct)

	var xd float64
	switch {
	case cct >= DaylightMinCCT && cct <= 7000:
		xd = 0.244063 + 0.09911*t1 + 2.9678*t2 - 4.607*t3
	case cct > 7000 && cct <= DaylightMaxCCT:
		xd = 0.23704 + 0.24748*t1 + 1.9018*t2 - 2.0064*t3
	default:
		return 0, 0, fmt.Errorf("samples: %v K is outside [%v, %v]: %w",
			cct, DaylightMinCCT, DaylightMaxCCT, ErrUnsupportedCCT)
	}

	yd := xd*(-3*xd+2.87) - 0.275
	m := 0.0241 + 0.2562*xd - 0.7341*yd
	m1 = (-1.3515 - 1.7703*xd + 5.9114*yd) / m
	m2 = (0.03 - 31.4424*xd + 30.0717*yd) / m
	return m1, m2, nil
}
