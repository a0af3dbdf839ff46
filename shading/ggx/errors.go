package ggx

import "errors"

// ErrUnsupportedDimension is returned for dimensions without Fresnel
// coefficients or albedo tables.
var ErrUnsupportedDimension = errors.New("ggx: unsupported dimension")
