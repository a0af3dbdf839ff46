package color

import (
	"sync"

	"github.com/gogpu/pbr/color/cie"
	"github.com/gogpu/pbr/color/samples"
)

// Spectrum bins.
const (
	SpectrumSampleCount   = 64
	SpectrumMinWavelength = 380.0
	SpectrumMaxWavelength = 720.0
)

type smitsSet struct {
	white, cyan, magenta, yellow, red, green, blue Spectrum
}

type spectrumTables struct {
	x, y, z      Spectrum
	reflectance  smitsSet
	illumination smitsSet
}

// tables loads the sampled tables once. The arguments are constants, so
// a failure is a programming error.
var tables = sync.OnceValue(func() *spectrumTables {
	const from, to, n = SpectrumMinWavelength, SpectrumMaxWavelength, SpectrumSampleCount

	xyz, err := samples.XYZ(cie.CIE1931, from, to, n)
	if err != nil {
		panic(err)
	}
	refl, err := samples.SmitsReflectance(from, to, n)
	if err != nil {
		panic(err)
	}
	illum, err := samples.SmitsIllumination(from, to, n)
	if err != nil {
		panic(err)
	}

	t := &spectrumTables{
		reflectance:  toSmitsSet(refl),
		illumination: toSmitsSet(illum),
	}
	copy(t.x[:], xyz.X)
	copy(t.y[:], xyz.Y)
	copy(t.z[:], xyz.Z)
	return t
})

func toSmitsSet(b samples.SmitsBasis) smitsSet {
	var s smitsSet
	copy(s.white[:], b.White)
	copy(s.cyan[:], b.Cyan)
	copy(s.magenta[:], b.Magenta)
	copy(s.yellow[:], b.Yellow)
	copy(s.red[:], b.Red)
	copy(s.green[:], b.Green)
	copy(s.blue[:], b.Blue)
	return s
}

// smits builds a spectrum from linear RGB by subtracting the largest
// white, then the largest secondary, then the remaining primary.
func (b *smitsSet) smits(r, g, bl float64) Spectrum {
	var s Spectrum
	add := func(basis *Spectrum, k float64) {
		if k != 0 {
			for i := range s {
				s[i] += basis[i] * k
			}
		}
	}

	switch {
	case r <= g && r <= bl:
		add(&b.white, r)
		if g <= bl {
			add(&b.cyan, g-r)
			add(&b.blue, bl-g)
		} else {
			add(&b.cyan, bl-r)
			add(&b.green, g-bl)
		}
	case g <= r && g <= bl:
		add(&b.white, g)
		if r <= bl {
			add(&b.magenta, r-g)
			add(&b.blue, bl-r)
		} else {
			add(&b.magenta, bl-g)
			add(&b.red, r-bl)
		}
	default:
		add(&b.white, bl)
		if r <= g {
			add(&b.yellow, r-bl)
			add(&b.green, g-r)
		} else {
			add(&b.yellow, g-bl)
			add(&b.red, r-g)
		}
	}

	for i := range s {
		s[i] = max(s[i], 0)
	}
	return s
}
