// Package table computes the directional albedo tables of the GGX term
// used by the multiple-bounce approximation and writes them as Go
// source.
//
// For every dimension the table holds, over a Size×Size grid of
// (roughness, cosine), the importance-sampled directional albedo of the
// GGX-only BRDF with F0 = 1, and per roughness its cosine-weighted
// average over the hemisphere.
package table

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/color"
	"github.com/gogpu/pbr/internal/parallel"
	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/sampling"
	"github.com/gogpu/pbr/shading"
	"github.com/gogpu/pbr/shading/compute"
	"github.com/gogpu/pbr/shading/ggx"
)

// ErrInvalidConfig is returned for configurations Compute cannot run.
var ErrInvalidConfig = errors.New("table: invalid config")

// ErrAlbedoRange is returned when an estimate falls outside [0, 1.01).
var ErrAlbedoRange = errors.New("table: albedo out of range")

const (
	// averageCount is the number of intervals of the cosine-weighted
	// average integration.
	averageCount = 1000

	// maxAlbedo bounds Monte-Carlo estimates before clamping to 1.
	maxAlbedo = 1.01
)

// Config configures Compute.
type Config struct {
	// Dimensions lists the space dimensions to compute.
	Dimensions []int
	// Size is the number of grid points per axis.
	Size int
	// SampleCount is the number of samples per grid cell.
	SampleCount int
	// Workers is the number of workers; 0 uses GOMAXPROCS.
	Workers int
	// Seed selects the random streams. Equal seeds give equal tables.
	Seed uint64
}

// DefaultConfig returns the configuration of the shipped tables.
func DefaultConfig() Config {
	return Config{
		Dimensions:  []int{3, 4, 5, 6, 7, 8, 9},
		Size:        32,
		SampleCount: 10_000_000,
		Seed:        1,
	}
}

func (c Config) validate() error {
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrInvalidConfig)
	}
	for _, n := range c.Dimensions {
		if n < ggx.MinDimension || n > ggx.MaxDimension {
			return fmt.Errorf("%w: dimension %d not in [%d, %d]",
				ErrInvalidConfig, n, ggx.MinDimension, ggx.MaxDimension)
		}
	}
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d is less than 2", ErrInvalidConfig, c.Size)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("%w: sample count %d is less than 1", ErrInvalidConfig, c.SampleCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Table is the albedo table of one dimension.
type Table struct {
	Dimension int
	Size      int
	// Albedo is row-major with roughness selecting the row.
	Albedo []float64
	// Average is the cosine-weighted average of each row.
	Average []float64
}

// At returns the value at roughness index i and cosine index j.
func (t *Table) At(i, j int) float64 {
	return t.Albedo[i*t.Size+j]
}

// gridValue maps index i of a size-point grid to [0, 1]. Index 0 maps
// slightly above zero where the estimate is defined.
func gridValue(i, size int) float64 {
	if i == 0 {
		return 0.01 / float64(size-1)
	}
	return float64(i) / float64(size-1)
}

type cellResult struct {
	value float64
	err   error
}

// Compute computes the tables of cfg.Dimensions on a worker pool.
// Cancelling ctx stops dispatching cells and returns ctx.Err().
func Compute(ctx context.Context, cfg Config) ([]Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(cfg.Workers)
	defer pool.Close()

	res := make([]Table, 0, len(cfg.Dimensions))
	for _, n := range cfg.Dimensions {
		t, err := computeDimension(ctx, pool, cfg, n)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func computeDimension(ctx context.Context, pool *parallel.WorkerPool, cfg Config, n int) (Table, error) {
	logger := pbr.Logger()
	start := time.Now()

	brdf, err := ggx.NewBRDF[color.RGB](n, ggx.WithGGXOnly())
	if err != nil {
		return Table{}, fmt.Errorf("table: dimension %d: %w", n, err)
	}
	colors := shading.Colors[color.RGB]{F0: color.RGBGray(1)}
	normal := numerical.Axis(n, n-1)

	size := cfg.Size
	cells, err := parallel.Map(ctx, pool, size*size, func(index int) cellResult {
		if ctx.Err() != nil {
			return cellResult{}
		}
		ri, ci := index/size, index%size
		if ri == 0 && ci != 0 {
			return cellResult{value: 1}
		}

		roughness := gridValue(ri, size)
		cosine := gridValue(ci, size)
		v := numerical.Zero(n)
		v[n-1] = cosine
		v[n-2] = math.Sqrt(1 - cosine*cosine)

		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(n)<<32|uint64(index)))
		albedo := compute.DirectionalAlbedoImportance[color.RGB](brdf.Material(roughness, colors), normal, v, cfg.SampleCount, rng)

		value, err := scalarAlbedo(albedo)
		if err != nil {
			return cellResult{err: fmt.Errorf("table: dimension %d cell (%d, %d): %w", n, ri, ci, err)}
		}
		value = clampAlbedo(logger, value, "dimension", n, "roughness", ri, "cosine", ci)
		logger.Debug("table: cell", "dimension", n, "roughness", ri, "cosine", ci, "albedo", value)
		return cellResult{value: value}
	})
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Dimension: n,
		Size:      size,
		Albedo:    make([]float64, size*size),
		Average:   make([]float64, size),
	}
	for i, c := range cells {
		if c.err != nil {
			return Table{}, c.err
		}
		t.Albedo[i] = c.value
	}

	for i := range size {
		avg, err := cosineWeightedAverage(n, t.Albedo[i*size:(i+1)*size])
		if err != nil {
			return Table{}, fmt.Errorf("table: dimension %d row %d: %w", n, i, err)
		}
		t.Average[i] = clampAlbedo(logger, avg, "dimension", n, "roughness", i, "average", true)
	}

	elapsed := time.Since(start)
	samples := int64(size) * int64(size) * int64(cfg.SampleCount)
	p := message.NewPrinter(language.English)
	logger.Info("table: dimension done",
		"dimension", n,
		"samples", p.Sprintf("%d", samples),
		"rate", p.Sprintf("%.0f samples/s", float64(samples)/max(elapsed.Seconds(), 1e-9)),
		"elapsed", elapsed.Round(time.Millisecond))

	return t, nil
}

// clampAlbedo clamps an estimate to 1, warning when it exceeds 1.
func clampAlbedo(logger *slog.Logger, v float64, args ...any) float64 {
	if v <= 1 {
		return v
	}
	logger.Warn("table: albedo estimate clamped", append(args, "value", v)...)
	return 1
}

// scalarAlbedo extracts the gray albedo. Values in [1, 1.01) are
// Monte-Carlo noise and are returned for clamping.
func scalarAlbedo(c color.RGB) (float64, error) {
	rgb := c.RGB32()
	if rgb[0] != rgb[1] || rgb[1] != rgb[2] {
		return 0, fmt.Errorf("table: albedo %v is not gray", c)
	}
	r := float64(rgb[0])
	if !(r >= 0 && r < maxAlbedo) {
		return 0, fmt.Errorf("%w: %v", ErrAlbedoRange, r)
	}
	return r, nil
}

func cosineWeightedAverage(n int, row []float64) (float64, error) {
	g, err := numerical.NewGrid1D(row)
	if err != nil {
		return 0, err
	}
	avg := sampling.CosineWeightedAverageByCosine(n, g.At, averageCount)
	if !(avg >= 0 && avg < maxAlbedo) {
		return 0, fmt.Errorf("%w: average %v", ErrAlbedoRange, avg)
	}
	return avg, nil
}
