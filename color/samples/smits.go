package samples

import "slices"

type smitsData struct {
	white, cyan, magenta, yellow, red, green, blue [smitsCount]float64
}

// SmitsBasis holds the seven basis spectra of Smits' RGB to spectrum
// conversion, resampled to a common set of bins.
//
// Reference: B. Smits, "An RGB-to-Spectrum Conversion for Reflectances",
// Journal of Graphics Tools 4(4), 1999.
type SmitsBasis struct {
	White, Cyan, Magenta, Yellow, Red, Green, Blue []float64
}

func (b SmitsBasis) clone() SmitsBasis {
	return SmitsBasis{
		White:   slices.Clone(b.White),
		Cyan:    slices.Clone(b.Cyan),
		Magenta: slices.Clone(b.Magenta),
		Yellow:  slices.Clone(b.Yellow),
		Red:     slices.Clone(b.Red),
		Green:   slices.Clone(b.Green),
		Blue:    slices.Clone(b.Blue),
	}
}

var smitsWaves = func() []float64 {
	w := make([]float64, smitsCount)
	for i := range w {
		w[i] = smitsMin + smitsStep*float64(i)
	}
	return w
}()

// SmitsReflectance returns the reflectance basis averaged over count
// bins of [from, to). All spectra are within [0, 1] and white is 1.
func SmitsReflectance(from, to float64, count int) (SmitsBasis, error) {
	return smits(&smitsReflectanceData, variantSmitsReflectance, from, to, count)
}

// SmitsIllumination returns the illumination basis averaged over count
// bins of [from, to). White is D65 scaled to project onto sRGB (1, 1, 1).
func SmitsIllumination(from, to float64, count int) (SmitsBasis, error) {
	return smits(&smitsIlluminationData, variantSmitsIllumination, from, to, count)
}

func smits(data *smitsData, variant uint8, from, to float64, count int) (SmitsBasis, error) {
	if err := checkRange(from, to, count); err != nil {
		return SmitsBasis{}, err
	}

	key := tableKey{from: from, to: to, count: count, variant: variant}
	basis := smitsCache.GetOrCreate(key, func() SmitsBasis {
		name := "smits reflectance"
		if variant == variantSmitsIllumination {
			name = "smits illumination"
		}
		logCreated(name, key)

		avg := func(v *[smitsCount]float64) []float64 {
			return mustAverage(smitsWaves, v[:], from, to, count)
		}
		return SmitsBasis{
			White:   avg(&data.white),
			Cyan:    avg(&data.cyan),
			Magenta: avg(&data.magenta),
			Yellow:  avg(&data.yellow),
			Red:     avg(&data.red),
			Green:   avg(&data.green),
			Blue:    avg(&data.blue),
		}
	})
	return basis.clone(), nil
}
