package samples

import (
	"fmt"
	"math"
)

// Average resamples the piecewise-linear function through (waves[i],
// values[i]) onto count equal bins over [from, to). Each result is the
// exact mean of the function over its bin; the function is zero outside
// [waves[0], waves[len-1]].
func Average(waves, values []float64, from, to float64, count int) ([]float64, error) {
	if len(waves) != len(values) {
		return nil, fmt.Errorf("samples: %d waves but %d values: %w", len(waves), len(values), ErrInvalidArgument)
	}
	if len(waves) < 2 {
		return nil, fmt.Errorf("samples: need at least 2 samples, got %d: %w", len(waves), ErrInvalidArgument)
	}
	for i := range waves {
		if !isFinite(waves[i]) || !isFinite(values[i]) {
			return nil, fmt.Errorf("samples: sample %d is not finite: %w", i, ErrInvalidArgument)
		}
		if i > 0 && waves[i] < waves[i-1] {
			return nil, fmt.Errorf("samples: waves are not sorted at %d: %w", i, ErrInvalidArgument)
		}
	}
	if err := checkRange(from, to, count); err != nil {
		return nil, err
	}

	res := make([]float64, count)
	segment := 0
	for k := range res {
		a := lerp(from, to, float64(k)/float64(count))
		b := lerp(from, to, float64(k+1)/float64(count))

		for segment+1 < len(waves) && waves[segment+1] <= a {
			segment++
		}
		sum := 0.0
		for i := segment; i+1 < len(waves) && waves[i] < b; i++ {
			lo, hi := max(a, waves[i]), min(b, waves[i+1])
			if !(lo < hi) {
				continue
			}
			sum += (interpolate(waves, values, i, lo) + interpolate(waves, values, i, hi)) / 2 * (hi - lo)
		}
		res[k] = sum / (b - a)
	}
	return res, nil
}

// interpolate evaluates segment i at w.
func interpolate(waves, values []float64, i int, w float64) float64 {
	t := (w - waves[i]) / (waves[i+1] - waves[i])
	return values[i] + t*(values[i+1]-values[i])
}

func checkRange(from, to float64, count int) error {
	if !isFinite(from) || !isFinite(to) || !(from < to) {
		return fmt.Errorf("samples: range [%v, %v) is empty: %w", from, to, ErrInvalidArgument)
	}
	if count < 1 {
		return fmt.Errorf("samples: count %d < 1: %w", count, ErrInvalidArgument)
	}
	return nil
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
