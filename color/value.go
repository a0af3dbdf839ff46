package color

import (
	"fmt"
	"math"
)

// Value is the set of color representations.
type Value interface {
	RGB | Spectrum
}

// ToColor converts a reflectance between representations. A spectrum
// converts to the RGB it shows under the reference white light.
func ToColor[To, From Value](c From) To {
	var res To
	switch p := any(&res).(type) {
	case *RGB:
		switch v := any(c).(type) {
		case RGB:
			*p = v
		case Spectrum:
			*p = v.reflectedRGB()
		}
	case *Spectrum:
		switch v := any(c).(type) {
		case RGB:
			*p = NewSpectrum(v[0], v[1], v[2])
		case Spectrum:
			*p = v
		}
	}
	return res
}

// ToIlluminant converts an illuminant between representations.
func ToIlluminant[To, From Value](c From) To {
	var res To
	switch p := any(&res).(type) {
	case *RGB:
		switch v := any(c).(type) {
		case RGB:
			*p = v
		case Spectrum:
			*p = v.linearRGB()
		}
	case *Spectrum:
		switch v := any(c).(type) {
		case RGB:
			*p = SpectrumIlluminant(v[0], v[1], v[2])
		case Spectrum:
			*p = v
		}
	}
	return res
}

// component validates a constructor argument.
func component(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("color: component %v is not finite", v))
	}
	return max(v, 0)
}

func clamp32(v float64) float32 {
	return float32(max(v, 0))
}
