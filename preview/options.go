package preview

import (
	"fmt"

	"github.com/gogpu/pbr/color"
)

// Option configures a preview.
type Option func(*options)

type options struct {
	size          int
	supersampling int
	light         color.RGB
	ambient       float64
	spectral      bool
	labels        bool
	dimension     int
}

func defaultOptions() options {
	return options{
		size:          96,
		supersampling: 2,
		light:         color.RGBIlluminant(1, 1, 1),
		ambient:       0.05,
		labels:        true,
		dimension:     3,
	}
}

// WithSize sets the side of one swatch in pixels.
func WithSize(px int) Option {
	return func(o *options) {
		o.size = px
	}
}

// WithSupersampling renders at factor times the final resolution before
// downscaling. A factor of 1 disables supersampling.
func WithSupersampling(factor int) Option {
	return func(o *options) {
		o.supersampling = factor
	}
}

// WithLight sets the linear RGB color of the directional light. The
// ambient term is a fixed fraction of it.
func WithLight(light color.RGB) Option {
	return func(o *options) {
		o.light = light
	}
}

// WithSpectral shades with color.Spectrum instead of color.RGB.
func WithSpectral(enabled bool) Option {
	return func(o *options) {
		o.spectral = enabled
	}
}

// WithLabels toggles the text under each swatch.
func WithLabels(enabled bool) Option {
	return func(o *options) {
		o.labels = enabled
	}
}

// WithDimension sets the dimension of the space the spheres are shaded
// in. The image shows the slice through the first two axes.
func WithDimension(n int) Option {
	return func(o *options) {
		o.dimension = n
	}
}

func newOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.size < 8:
		return o, fmt.Errorf("preview: size %d: %w", o.size, ErrInvalidOption)
	case o.supersampling < 1 || o.supersampling > 8:
		return o, fmt.Errorf("preview: supersampling %d: %w", o.supersampling, ErrInvalidOption)
	case !o.light.IsFinite() || !o.light.IsNonNegative():
		return o, fmt.Errorf("preview: light %v: %w", o.light, ErrInvalidOption)
	}
	return o, nil
}
