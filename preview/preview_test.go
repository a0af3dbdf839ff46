package preview

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/pbr/color"
	"github.com/gogpu/pbr/color/samples"
	"github.com/gogpu/pbr/shading/ggx"
)

var testMaterials = []Material{
	{Name: "red", Color: color.NewRGB(0.8, 0.1, 0.1), Roughness: 0.5},
	{Name: "gold", Color: color.NewRGB(1, 0.71, 0.29), Metalness: 1, Roughness: 0.3},
}

// center returns the pixel in the middle of swatch i.
func center(img *image.RGBA64, size, i int) (r, g, b uint16) {
	c := img.RGBA64At(i*size+size/2, size/2)
	return c.R, c.G, c.B
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestMaterials(t *testing.T) {
	const size = 24
	tests := []struct {
		name string
		opts []Option
	}{
		{"rgb", nil},
		{"spectral", []Option{WithSpectral(true)}},
		{"dimension 4", []Option{WithDimension(4)}},
		{"dimension 5 spectral", []Option{WithDimension(5), WithSpectral(true)}},
		{"no supersampling", []Option{WithSupersampling(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithSize(size)}, tt.opts...)
			img, err := Materials(testMaterials, opts...)
			if err != nil {
				t.Fatalf("Materials: %v", err)
			}
			want := image.Rect(0, 0, 2*size, size+labelHeight)
			if img.Bounds() != want {
				t.Fatalf("bounds = %v, want %v", img.Bounds(), want)
			}

			// Resampling may round the flat background by a step.
			if c := img.RGBA64At(0, 0); absDiff(c.R, backgroundColor.R) > 0x100 {
				t.Errorf("corner = %v, want background", c)
			}
			r, g, b := center(img, size, 0)
			if !(r > g && r > b) {
				t.Errorf("red sphere center = (%d, %d, %d)", r, g, b)
			}
			if r <= backgroundColor.R {
				t.Errorf("red sphere is not lit: %d", r)
			}
			r, _, b = center(img, size, 1)
			if !(r > b) {
				t.Errorf("gold sphere center = (%d, _, %d)", r, b)
			}
		})
	}
}

func TestMaterials_Labels(t *testing.T) {
	const size = 32
	with, err := Materials(testMaterials[:1], WithSize(size))
	if err != nil {
		t.Fatal(err)
	}
	without, err := Materials(testMaterials[:1], WithSize(size), WithLabels(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := without.Bounds().Dy(); got != size {
		t.Errorf("height without labels = %d, want %d", got, size)
	}

	lit := 0
	for y := size; y < size+labelHeight; y++ {
		for x := range size {
			if with.RGBA64At(x, y) != backgroundColor {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("label area is empty")
	}
}

func TestMaterials_Light(t *testing.T) {
	const size = 16
	dim, err := Materials(testMaterials[:1], WithSize(size), WithLight(color.RGBIlluminant(0.2, 0.2, 0.2)))
	if err != nil {
		t.Fatal(err)
	}
	bright, err := Materials(testMaterials[:1], WithSize(size))
	if err != nil {
		t.Fatal(err)
	}
	r1, _, _ := center(dim, size, 0)
	r2, _, _ := center(bright, size, 0)
	if r1 >= r2 {
		t.Errorf("dim light center %d >= bright light center %d", r1, r2)
	}
}

func TestMaterials_Errors(t *testing.T) {
	tests := []struct {
		name      string
		materials []Material
		opts      []Option
		want      error
	}{
		{"none", nil, nil, ErrNoMaterials},
		{"zero roughness", []Material{{Color: color.RGBGray(0.5)}}, nil, ErrInvalidMaterial},
		{"metalness", []Material{{Color: color.RGBGray(0.5), Roughness: 0.5, Metalness: 2}}, nil, ErrInvalidMaterial},
		{"size", testMaterials, []Option{WithSize(2)}, ErrInvalidOption},
		{"supersampling", testMaterials, []Option{WithSupersampling(0)}, ErrInvalidOption},
		{"dimension", testMaterials, []Option{WithDimension(2)}, ggx.ErrUnsupportedDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Materials(tt.materials, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTemperatureStrip(t *testing.T) {
	const size = 16
	img, err := TemperatureStrip(Blackbody, 2000, 10000, 3, WithSize(size), WithSupersampling(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, 3*size, size+labelHeight); img.Bounds() != want {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), want)
	}
	r, _, b := center(img, size, 0)
	if !(r > b) {
		t.Errorf("2000 K = (%d, _, %d), want reddish", r, b)
	}
	r, _, b = center(img, size, 2)
	if !(b > r) {
		t.Errorf("10000 K = (%d, _, %d), want bluish", r, b)
	}
}

func TestTemperatureStrip_D65(t *testing.T) {
	const size = 8
	img, err := TemperatureStrip(Daylight, 6504, 6504, 1, WithSize(size), WithLabels(false))
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := center(img, size, 0)
	for _, c := range []uint16{r, g, b} {
		if float64(c) < 0.9*math.MaxUint16 {
			t.Errorf("D65 at unit luminance = (%d, %d, %d), want near white", r, g, b)
			break
		}
	}
}

func TestTemperatureStrip_Errors(t *testing.T) {
	tests := []struct {
		name     string
		kind     Illuminant
		from, to float64
		steps    int
		want     error
	}{
		{"steps", Blackbody, 2000, 3000, 0, ErrInvalidOption},
		{"daylight range", Daylight, 3000, 6000, 2, samples.ErrUnsupportedCCT},
		{"temperature", Blackbody, -1, 3000, 2, samples.ErrInvalidArgument},
		{"kind", Illuminant(9), 2000, 3000, 2, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TemperatureStrip(tt.kind, tt.from, tt.to, tt.steps)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTemperatures(t *testing.T) {
	got := temperatures(1000, 3000, 3)
	want := []float64{1000, 2000, 3000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("temperatures[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := temperatures(4000, 9000, 1); len(got) != 1 || got[0] != 4000 {
		t.Errorf("single step = %v", got)
	}
}

func TestIlluminantString(t *testing.T) {
	if Blackbody.String() != "blackbody" || Daylight.String() != "daylight" {
		t.Errorf("names = %q, %q", Blackbody, Daylight)
	}
	if got := Illuminant(7).String(); got != "Illuminant(7)" {
		t.Errorf("unknown = %q", got)
	}
}

func TestRoundTripDeltaE(t *testing.T) {
	tests := []color.RGB{
		color.RGBGray(0.5),
		color.NewRGB(0.8, 0.1, 0.1),
		color.NewRGB(0.2, 0.5, 0.7),
		color.NewRGB(1, 0.71, 0.29),
	}
	for _, c := range tests {
		d := RoundTripDeltaE(c)
		if math.IsNaN(d) || d < 0 || d > 5 {
			t.Errorf("RoundTripDeltaE(%v) = %v", c, d)
		}
	}
}

func BenchmarkMaterials(b *testing.B) {
	for b.Loop() {
		if _, err := Materials(testMaterials, WithSize(32)); err != nil {
			b.Fatal(err)
		}
	}
}
