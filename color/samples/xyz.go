package samples

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/pbr/color/cie"
)

// XYZSamples holds the matching functions integrated over each bin and
// normalized so that the Y samples sum to 1. The dot product of a
// spectrum sampled on the same bins with Y is its relative luminance.
type XYZSamples struct {
	X, Y, Z []float64
}

// XYZ returns the matching function samples of the observer over count
// bins of [from, to).
func XYZ(observer cie.Observer, from, to float64, count int) (XYZSamples, error) {
	if !observer.Valid() {
		return XYZSamples{}, fmt.Errorf("samples: unknown observer %d: %w", observer, ErrInvalidArgument)
	}
	if err := checkRange(from, to, count); err != nil {
		return XYZSamples{}, err
	}

	key := tableKey{from: from, to: to, count: count, variant: uint8(observer)}
	s, ok := xyzCache.Get(key)
	if !ok {
		computed, err := computeXYZ(observer, from, to, count)
		if err != nil {
			return XYZSamples{}, err
		}
		s = xyzCache.GetOrCreate(key, func() XYZSamples {
			logCreated(observer.String(), key)
			return computed
		})
	}
	return XYZSamples{X: slices.Clone(s.X), Y: slices.Clone(s.Y), Z: slices.Clone(s.Z)}, nil
}

// computeXYZ fails when the range holds no luminance, which happens
// outside the support of the matching functions.
func computeXYZ(observer cie.Observer, from, to float64, count int) (XYZSamples, error) {
	s := XYZSamples{
		X: make([]float64, count),
		Y: make([]float64, count),
		Z: make([]float64, count),
	}

	sum := 0.0
	for i := range count {
		a := lerp(from, to, float64(i)/float64(count))
		b := lerp(from, to, float64(i+1)/float64(count))
		s.X[i] = observer.XIntegral(a, b)
		s.Y[i] = observer.YIntegral(a, b)
		s.Z[i] = observer.ZIntegral(a, b)
		sum += s.Y[i]
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return XYZSamples{}, fmt.Errorf("samples: %v has no luminance over [%v, %v) nm: %w",
			observer, from, to, ErrInvalidArgument)
	}
	for i := range count {
		s.X[i] /= sum
		s.Y[i] /= sum
		s.Z[i] /= sum
	}
	return s, nil
}
