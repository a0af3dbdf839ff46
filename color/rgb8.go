package color

import (
	"fmt"

	"github.com/gogpu/pbr/internal/srgb"
)

// RGB8 is an 8-bit sRGB-encoded color.
type RGB8 struct {
	R, G, B uint8
}

// RGB8FromLinear encodes linear components as 8-bit sRGB. Components are
// clamped to [0, 1].
func RGB8FromLinear(r, g, b float64) RGB8 {
	return RGB8{srgb.LinearToUint8(r), srgb.LinearToUint8(g), srgb.LinearToUint8(b)}
}

// LinearRGB decodes the color to linear components.
func (c RGB8) LinearRGB() [3]float32 {
	return [3]float32{
		float32(srgb.Uint8ToLinear(c.R)),
		float32(srgb.Uint8ToLinear(c.G)),
		float32(srgb.Uint8ToLinear(c.B)),
	}
}

// String formats the color as rgb8(r, g, b).
func (c RGB8) String() string {
	return fmt.Sprintf("rgb8(%d, %d, %d)", c.R, c.G, c.B)
}
