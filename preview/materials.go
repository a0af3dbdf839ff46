package preview

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/color"
	"github.com/gogpu/pbr/numerical"
	"github.com/gogpu/pbr/shading"
	"github.com/gogpu/pbr/shading/ggx"
)

// Material describes one preview sphere.
type Material struct {
	Name      string
	Color     color.RGB
	Metalness float64
	Roughness float64
}

func (m Material) validate() error {
	if !(m.Roughness > 0 && m.Roughness <= 1) {
		return fmt.Errorf("roughness %v: %w", m.Roughness, ErrInvalidMaterial)
	}
	if !(m.Metalness >= 0 && m.Metalness <= 1) {
		return fmt.Errorf("metalness %v: %w", m.Metalness, ErrInvalidMaterial)
	}
	if !m.Color.IsFinite() || !m.Color.IsNonNegative() {
		return fmt.Errorf("color %v: %w", m.Color, ErrInvalidMaterial)
	}
	return nil
}

// Materials renders one sphere per material, lit by a directional light
// from the upper left and a small ambient term.
func Materials(materials []Material, opts ...Option) (*image.RGBA64, error) {
	if len(materials) == 0 {
		return nil, ErrNoMaterials
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	for i, m := range materials {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("preview: material %d (%q): %w", i, m.Name, err)
		}
	}

	var pixel pixelFunc
	if o.spectral {
		pixel, err = sphereShader[color.Spectrum](o, materials)
	} else {
		pixel, err = sphereShader[color.RGB](o, materials)
	}
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(materials))
	for i, m := range materials {
		labels[i] = m.Name
	}

	pbr.Logger().Debug("preview: rendering materials",
		"count", len(materials), "size", o.size, "dimension", o.dimension, "spectral", o.spectral)
	return render(o, labels, pixel)
}

// lightDirection points to the upper left and toward the viewer.
func lightDirection(dimension int) numerical.Vector {
	l := numerical.Zero(dimension)
	l[0], l[1], l[dimension-1] = -0.45, 0.55, 0.7
	return l.Normalize()
}

func sphereShader[C shading.Color[C]](o options, materials []Material) (pixelFunc, error) {
	brdf, err := ggx.NewBRDF[C](o.dimension)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	n := o.dimension
	v := numerical.Axis(n, n-1)
	l := lightDirection(n)
	light := color.ToIlluminant[C](o.light)
	ambient := light.Scale(o.ambient)

	shaded := make([]ggx.Material[C], len(materials))
	base := make([]C, len(materials))
	for i, m := range materials {
		c := color.ToColor[C](m.Color)
		shaded[i] = brdf.Material(m.Roughness, shading.ComputeMetalness(c, m.Metalness))
		base[i] = c
		if o.spectral {
			pbr.Logger().Debug("preview: spectral round trip",
				"material", m.Name, "deltaE", RoundTripDeltaE(m.Color))
		}
	}

	return func(i int, x, y float64) ([3]float32, bool) {
		r2 := x*x + y*y
		if r2 >= 1 {
			return [3]float32{}, false
		}
		normal := numerical.Zero(n)
		normal[0], normal[1], normal[n-1] = x, y, math.Sqrt(1-r2)

		res := ambient.Mul(base[i])
		if nl := normal.Dot(l); nl > 0 {
			res = res.Add(shaded[i].F(normal, v, l).Mul(light).Scale(nl))
		}
		return res.RGB32(), true
	}, nil
}
