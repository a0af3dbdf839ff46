package ggx

import "log/slog"

// Option configures a BRDF.
type Option func(*options)

type options struct {
	ggxOnly bool
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithGGXOnly restricts the BRDF to the specular GGX term and sampling
// to visible normals.
func WithGGXOnly() Option {
	return func(o *options) {
		o.ggxOnly = true
	}
}

// WithLogger sets the logger used by the BRDF. The package logger
// configured with pbr.SetLogger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
