package shading

import (
	"math"
	"testing"

	"github.com/gogpu/pbr/color"
)

func TestComputeMetalness_RGB(t *testing.T) {
	c := color.NewRGB(0.8, 0.4, 0.2)

	tests := []struct {
		name      string
		metalness float64
		f0        color.RGB
		rhoSS     color.RGB
	}{
		{"dielectric", 0, color.RGBGray(0.05), c},
		{"metal", 1, c, color.RGB{}},
		{"half", 0.5, color.RGB{0.425, 0.225, 0.125}, color.RGB{0.4, 0.2, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetalness(c, tt.metalness)
			if !got.F0.EqualToAbsolute(tt.f0, 1e-12) {
				t.Errorf("F0 = %v, want %v", got.F0, tt.f0)
			}
			if !got.RhoSS.EqualToAbsolute(tt.rhoSS, 1e-12) {
				t.Errorf("RhoSS = %v, want %v", got.RhoSS, tt.rhoSS)
			}
		})
	}
}

func TestComputeMetalness_Spectrum(t *testing.T) {
	c := color.NewSpectrum(0.3, 0.6, 0.9)
	got := ComputeMetalness(c, 0)
	if !got.F0.EqualToAbsolute(color.SpectrumGray(0.05), 1e-12) {
		t.Errorf("F0 = %v", got.F0)
	}
	if got.RhoSS != c {
		t.Errorf("RhoSS differs from the surface color")
	}
	if metal := ComputeMetalness(c, 1); !metal.RhoSS.IsBlack() {
		t.Errorf("metal RhoSS = %v, want black", metal.RhoSS)
	}
}

func TestGray(t *testing.T) {
	if g := Gray[color.RGB](0.5); g != color.RGBGray(0.5) {
		t.Errorf("Gray[RGB](0.5) = %v", g)
	}
	if l := Gray[color.Spectrum](1).Luminance(); math.Abs(l-1) > 1e-9 {
		t.Errorf("Gray[Spectrum](1) luminance = %v", l)
	}
}

func TestSample_IsEmpty(t *testing.T) {
	if !(Sample[color.RGB]{}).IsEmpty() {
		t.Error("zero sample should be empty")
	}
	if (Sample[color.RGB]{PDF: 1}).IsEmpty() {
		t.Error("sample with PDF 1 should not be empty")
	}
}
