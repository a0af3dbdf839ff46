package preview

import "errors"

var (
	// ErrNoMaterials is returned when there is nothing to render.
	ErrNoMaterials = errors.New("preview: no materials")

	// ErrInvalidMaterial is returned for a material with roughness
	// outside (0, 1] or metalness outside [0, 1].
	ErrInvalidMaterial = errors.New("preview: invalid material")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("preview: invalid option")
)
