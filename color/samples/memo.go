package samples

import (
	"slices"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/internal/cache"
)

// tableKey identifies a memoized table. param carries the CCT or the
// temperature for parameterized tables.
type tableKey struct {
	from, to float64
	count    int
	param    float64
	variant  uint8
}

// tableCacheLimit bounds the entries of every table cache.
const tableCacheLimit = 64

var (
	xyzCache      = cache.New[tableKey, XYZSamples](tableCacheLimit)
	spectrumCache = cache.New[tableKey, []float64](tableCacheLimit)
	smitsCache    = cache.New[tableKey, SmitsBasis](tableCacheLimit)
)

// Variants of spectrumCache and smitsCache entries.
const (
	variantD65 uint8 = iota
	variantDaylight
	variantBlackbody
	variantSmitsReflectance
	variantSmitsIllumination
)

// memoSpectrum returns a copy of the memoized table for key, creating it
// with create on first use. Arguments must be validated beforehand.
func memoSpectrum(name string, key tableKey, create func() []float64) []float64 {
	table := spectrumCache.GetOrCreate(key, func() []float64 {
		logCreated(name, key)
		return create()
	})
	return slices.Clone(table)
}

func logCreated(name string, key tableKey) {
	pbr.Logger().Debug("samples: table created",
		"table", name,
		"from", key.from,
		"to", key.to,
		"count", key.count,
		"param", key.param)
}

// mustAverage is Average for embedded tables whose arguments have
// already been validated.
func mustAverage(waves, values []float64, from, to float64, count int) []float64 {
	res, err := Average(waves, values, from, to, count)
	if err != nil {
		panic(err)
	}
	return res
}
