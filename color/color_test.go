package color

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gogpu/pbr/internal/srgb"
)

const iterations = 1000

func equal3(a, b [3]float32, maxError, sumMaxError float32) bool {
	var sum float32
	for i := range a {
		d := float32(math.Abs(float64(a[i] - b[i])))
		if !(d <= maxError) {
			return false
		}
		sum += d
	}
	return sum <= sumMaxError
}

func random3(rng *rand.Rand) [3]float32 {
	return [3]float32{rng.Float32(), rng.Float32(), rng.Float32()}
}

// colorCase runs the shared color properties for one representation.
type colorCase[C interface {
	Mul(C) C
	RGB32() [3]float32
	EqualToAbsolute(C, float64) bool
	IsNonNegative() bool
	Luminance() float64
}] struct {
	name                         string
	color, illuminant            func(r, g, b float64) C
	gray                         func(v float64) C
	fromRGB8, illuminantFromRGB8 func(RGB8) C
	whiteLight, whiteLightSum    float32
	whiteColor, whiteColorSum    float32
	constructorError             float64
}

func (tc colorCase[C]) run(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, uint64(len(tc.name))))

	t.Run("white light", func(t *testing.T) {
		white := tc.illuminant(1, 1, 1)
		for range iterations {
			rgb := random3(rng)
			shaded := tc.color(float64(rgb[0]), float64(rgb[1]), float64(rgb[2])).Mul(white).RGB32()
			if !equal3(rgb, shaded, tc.whiteLight, tc.whiteLightSum) {
				t.Fatalf("RGB %v, shaded %v", rgb, shaded)
			}
		}
	})

	t.Run("white color", func(t *testing.T) {
		white := tc.color(1, 1, 1)
		for range iterations {
			rgb := random3(rng)
			shaded := white.Mul(tc.illuminant(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))).RGB32()
			if !equal3(rgb, shaded, tc.whiteColor, tc.whiteColorSum) {
				t.Fatalf("RGB %v, shaded %v", rgb, shaded)
			}
		}
	})

	t.Run("constructors", func(t *testing.T) {
		for range iterations {
			rgb := random3(rng)
			r, g, b := float64(rgb[0]), float64(rgb[1]), float64(rgb[2])
			c8 := RGB8FromLinear(r, g, b)

			if c1, c2 := tc.color(r, g, b), tc.fromRGB8(c8); !c1.EqualToAbsolute(c2, tc.constructorError) {
				t.Fatalf("color %v, from %v differs", rgb, c8)
			}
			if c1, c2 := tc.illuminant(r, g, b), tc.illuminantFromRGB8(c8); !c1.EqualToAbsolute(c2, tc.constructorError) {
				t.Fatalf("illuminant %v, from %v differs", rgb, c8)
			}

			neg := tc.color(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
			if !neg.IsNonNegative() {
				t.Fatal("color from negative components is negative")
			}
			if !tc.gray(2*rng.Float64() - 1).IsNonNegative() {
				t.Fatal("gray from a negative value is negative")
			}
		}
	})

	t.Run("luminance", func(t *testing.T) {
		for range iterations {
			v := 2 * rng.Float64()
			l := tc.gray(v).Luminance()
			if !(l >= 0) || math.Abs(v-l) > 0.0002 {
				t.Fatalf("gray %v has luminance %v", v, l)
			}
		}
	})
}

func TestRGB(t *testing.T) {
	colorCase[RGB]{
		name:               "rgb",
		color:              NewRGB,
		illuminant:         RGBIlluminant,
		gray:               RGBGray,
		fromRGB8:           RGBFromRGB8,
		illuminantFromRGB8: RGBFromRGB8,
		constructorError:   0.005,
	}.run(t)
}

func TestSpectrum(t *testing.T) {
	colorCase[Spectrum]{
		name:               "spectrum",
		color:              NewSpectrum,
		illuminant:         SpectrumIlluminant,
		gray:               SpectrumGray,
		fromRGB8:           SpectrumFromRGB8,
		illuminantFromRGB8: SpectrumIlluminantFromRGB8,
		whiteLight:         0.03,
		whiteLightSum:      0.05,
		whiteColor:         0.06,
		whiteColorSum:      0.07,
		constructorError:   0.01,
	}.run(t)
}

func TestRGB_Exact(t *testing.T) {
	tests := []struct {
		name string
		got  [3]float32
		want [3]float32
	}{
		{"gray 1", RGBGray(1).RGB32(), [3]float32{1, 1, 1}},
		{"gray 0.1", RGBGray(0.1).RGB32(), [3]float32{0.1, 0.1, 0.1}},
		{"components", NewRGB(0.1, 0.2, 0.3).RGB32(), [3]float32{0.1, 0.2, 0.3}},
		{"rgb8 white", RGBFromRGB8(RGB8{255, 255, 255}).RGB32(), [3]float32{1, 1, 1}},
		{"rgb8 black", RGBFromRGB8(RGB8{0, 0, 0}).RGB32(), [3]float32{0, 0, 0}},
		{"rgb8", RGBFromRGB8(RGB8{100, 150, 50}).RGB32(), RGB8{100, 150, 50}.LinearRGB()},
		{"rgb8 2", RGBFromRGB8(RGB8{250, 10, 100}).RGB32(), RGB8{250, 10, 100}.LinearRGB()},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if l := RGBFromRGB8(RGB8{255, 255, 255}).Luminance(); math.Abs(l-1) > 1e-12 {
		t.Errorf("white luminance = %v", l)
	}
	if l := NewRGB(0.1, 0.9, 0.2).Luminance(); l != srgb.Luminance(0.1, 0.9, 0.2) {
		t.Errorf("luminance = %v", l)
	}
}

func TestRGB_Arithmetic(t *testing.T) {
	a := NewRGB(0.1, 0.2, 0.3)
	b := NewRGB(0.4, 0.5, 0.6)

	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"add", a.Add(b), RGB{0.1 + 0.4, 0.2 + 0.5, 0.3 + 0.6}},
		{"sub", b.Sub(a), RGB{0.4 - 0.1, 0.5 - 0.2, 0.6 - 0.3}},
		{"mul", a.Mul(b), RGB{0.1 * 0.4, 0.2 * 0.5, 0.3 * 0.6}},
		{"scale", a.Scale(4.1), RGB{0.1 * 4.1, 0.2 * 4.1, 0.3 * 4.1}},
		{"div", a.Div(RGB{2, 4, 6}), RGB{0.05, 0.05, 0.05}},
		{"div scalar", b.DivScalar(2), RGB{0.2, 0.25, 0.3}},
		{"one minus", a.Scale(-1).AddScalar(1), RGB{0.9, 0.8, 0.7}},
		{"multiply add", a.MultiplyAdd(b, 2), RGB{0.1 + 0.8, 0.2 + 1.0, 0.3 + 1.2}},
		{"lerp", a.Lerp(b, 0.5), RGB{0.25, 0.35, 0.45}},
		{"clamp", RGB{-1, 0.5, 2}.Clamp(0, 1), RGB{0, 0.5, 1}},
	}
	for _, tt := range tests {
		if !tt.got.EqualToAbsolute(tt.want, 1e-15) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Values are copied, not aliased.
	if a != NewRGB(0.1, 0.2, 0.3) {
		t.Error("arithmetic modified the receiver")
	}
}

func TestIsBlack(t *testing.T) {
	var last Spectrum
	last[SpectrumSampleCount-1] = 1

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"zero rgb", RGB{}.IsBlack(), true},
		{"blue only", NewRGB(0, 0, 0.5).IsBlack(), false},
		{"zero spectrum", Spectrum{}.IsBlack(), true},
		{"last bin", last.IsBlack(), false},
		{"NaN rgb", RGB{0, math.NaN(), 0}.IsBlack(), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: IsBlack = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConstructorPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"rgb nan", func() { NewRGB(math.NaN(), 0, 0) }},
		{"rgb inf", func() { RGBGray(math.Inf(1)) }},
		{"spectrum nan", func() { NewSpectrum(0, math.NaN(), 0) }},
		{"illuminant inf", func() { SpectrumIlluminant(0, 0, math.Inf(-1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "not finite") {
					t.Errorf("panic = %v", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestToColor(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 100 {
		r, g, b := rng.Float64(), rng.Float64(), rng.Float64()
		rgb := NewRGB(r, g, b)

		s := ToColor[Spectrum](rgb)
		if s != NewSpectrum(r, g, b) {
			t.Fatal("ToColor[Spectrum] differs from NewSpectrum")
		}
		back := ToColor[RGB](s)
		if !back.EqualToAbsolute(rgb, 0.01) {
			t.Fatalf("reflectance round trip %v → %v", rgb, back)
		}

		light := ToIlluminant[Spectrum](rgb)
		if light != SpectrumIlluminant(r, g, b) {
			t.Fatal("ToIlluminant[Spectrum] differs from SpectrumIlluminant")
		}
		if back := ToIlluminant[RGB](light); !back.EqualToAbsolute(rgb, 0.01) {
			t.Fatalf("illuminant round trip %v → %v", rgb, back)
		}
	}

	if ToColor[RGB](NewRGB(0.1, 0.2, 0.3)) != NewRGB(0.1, 0.2, 0.3) {
		t.Error("same-type ToColor should be the identity")
	}
	s := NewSpectrum(0.3, 0.6, 0.9)
	if ToIlluminant[Spectrum](s) != s {
		t.Error("same-type ToIlluminant should be the identity")
	}
}

func TestRGB8(t *testing.T) {
	c := RGB8FromLinear(1, 0.5, -1)
	if c != (RGB8{255, 188, 0}) {
		t.Errorf("RGB8FromLinear = %v", c)
	}
	if got := c.String(); got != "rgb8(255, 188, 0)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRGB(1, 0.5, 0).RGB8(); got != c {
		t.Errorf("RGB.RGB8() = %v, want %v", got, c)
	}
}

func TestString(t *testing.T) {
	if got := NewRGB(0.5, 1, 0).String(); got != "rgb(0.5, 1, 0)" {
		t.Errorf("RGB.String() = %q", got)
	}
	if got := SpectrumGray(1).String(); !strings.HasPrefix(got, "spectrum(1, 1, ") {
		t.Errorf("Spectrum.String() = %q", got)
	}
}

func TestWavelength(t *testing.T) {
	if w := Wavelength(0); math.Abs(w-382.65625) > 1e-12 {
		t.Errorf("Wavelength(0) = %v", w)
	}
	if w := Wavelength(SpectrumSampleCount - 1); math.Abs(w-717.34375) > 1e-12 {
		t.Errorf("Wavelength(63) = %v", w)
	}
}

func BenchmarkNewSpectrum(b *testing.B) {
	var s Spectrum
	for i := 0; i < b.N; i++ {
		s = s.Add(NewSpectrum(0.2, 0.5, 0.8))
	}
	_ = s
}
