package preview

import (
	"math"

	"cogentcore.org/core/colors/cam/cie"

	"github.com/gogpu/pbr/color"
)

// RoundTripDeltaE returns the CIE76 color difference between a linear
// RGB reflectance and the RGB of its spectrum under the reference white.
// It measures how well the spectral upsampling preserves the color.
func RoundTripDeltaE(c color.RGB) float64 {
	back := color.ToColor[color.RGB](color.ToColor[color.Spectrum](c))
	l1, a1, b1 := lab(c)
	l2, a2, b2 := lab(back)
	dl, da, db := float64(l1-l2), float64(a1-a2), float64(b1-b2)
	return math.Sqrt(dl*dl + da*da + db*db)
}

func lab(c color.RGB) (l, a, b float32) {
	x, y, z := cie.SRGBLinToXYZ(float32(c[0]), float32(c[1]), float32(c[2]))
	return cie.XYZToLAB(x, y, z)
}
