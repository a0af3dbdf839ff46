package preview

import (
	"fmt"
	"image"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/color"
	"github.com/gogpu/pbr/color/samples"
)

// Illuminant selects the family of a temperature strip.
type Illuminant uint8

const (
	// Blackbody is a Planckian radiator.
	Blackbody Illuminant = iota
	// Daylight is the CIE daylight series, defined from 4000 K to 25000 K.
	Daylight
)

func (k Illuminant) String() string {
	switch k {
	case Blackbody:
		return "blackbody"
	case Daylight:
		return "daylight"
	default:
		return fmt.Sprintf("Illuminant(%d)", uint8(k))
	}
}

func (k Illuminant) spectrum(kelvin float64) (color.Spectrum, error) {
	const from, to, n = color.SpectrumMinWavelength, color.SpectrumMaxWavelength, color.SpectrumSampleCount

	var (
		values []float64
		err    error
	)
	switch k {
	case Blackbody:
		values, err = samples.Blackbody(kelvin, from, to, n)
	case Daylight:
		values, err = samples.Daylight(kelvin, from, to, n)
	default:
		return color.Spectrum{}, fmt.Errorf("preview: illuminant %v: %w", k, ErrInvalidOption)
	}
	if err != nil {
		return color.Spectrum{}, fmt.Errorf("preview: %v at %v K: %w", k, kelvin, err)
	}

	var s color.Spectrum
	copy(s[:], values)
	return s, nil
}

// temperatures returns steps values spaced evenly over [from, to].
func temperatures(from, to float64, steps int) []float64 {
	res := make([]float64, steps)
	for i := range res {
		if steps == 1 {
			res[i] = from
			continue
		}
		res[i] = from + (to-from)*float64(i)/float64(steps-1)
	}
	return res
}

// TemperatureStrip renders steps flat swatches of the illuminant at
// temperatures spaced evenly over [from, to] kelvin. Each spectrum is
// scaled to unit luminance, so the strip shows chromaticity only.
func TemperatureStrip(kind Illuminant, from, to float64, steps int, opts ...Option) (*image.RGBA64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("preview: %d steps: %w", steps, ErrInvalidOption)
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	temps := temperatures(from, to, steps)
	swatches := make([][3]float32, steps)
	labels := make([]string, steps)
	for i, t := range temps {
		s, err := kind.spectrum(t)
		if err != nil {
			return nil, err
		}
		lum := s.Luminance()
		if !(lum > 0) {
			return nil, fmt.Errorf("preview: %v at %v K has no luminance: %w", kind, t, ErrInvalidOption)
		}
		swatches[i] = s.DivScalar(lum).RGB32()
		labels[i] = fmt.Sprintf("%.0fK", t)
	}

	pbr.Logger().Debug("preview: rendering temperature strip",
		"illuminant", kind.String(), "from", from, "to", to, "steps", steps)
	return render(o, labels, func(i int, _, _ float64) ([3]float32, bool) {
		return swatches[i], true
	})
}
