package cie

import (
	"math"
	"testing"

	"github.com/gogpu/pbr/numerical"
)

func relativeNear(got, want, rel float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want)/max(math.Abs(got), math.Abs(want)) <= rel
}

func TestIntegralReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		f    func(a, b float64) float64
		a, b float64
		want float64
	}{
		{"x31", X31Integral, 380, 480, 17.0952220179951084163111128},
		{"y31", Y31Integral, 380, 480, 2.8369922178039151633727727},
		{"z31", Z31Integral, 380, 480, 92.5756043882350714446630041},
		{"x31", X31Integral, 380, 780, 106.7136686555682046723277466},
		{"y31", Y31Integral, 380, 780, 106.9437893849319417309744979},
		{"z31", Z31Integral, 380, 780, 106.8063035972704729918887893},
		{"x31", X31Integral, 480, 580, 28.6543035977093031216216843},
		{"y31", Y31Integral, 480, 580, 70.2596831086948870041508517},
		{"z31", Z31Integral, 480, 580, 14.2268442440640586217767044},
		{"x31", X31Integral, 580, 680, 60.5714049395893259114122047},
		{"y31", Y31Integral, 580, 680, 33.596280199235595855443724},
		{"x31", X31Integral, 680, 780, 0.3927381002744672229827447},
		{"x64", X64Integral, 380, 480, 19.48847732828588252162093},
		{"y64", Y64Integral, 380, 480, 5.7847314073216769548408396},
		{"z64", Z64Integral, 380, 480, 104.921897804349332418615282},
		{"x64", X64Integral, 380, 780, 117.849840154035804790415981},
		{"y64", Y64Integral, 380, 780, 116.9200625431827921713652154},
		{"z64", Z64Integral, 380, 780, 117.344557482254431577238072},
		{"x64", X64Integral, 480, 580, 35.40241765682787428550324},
		{"y64", Y64Integral, 480, 580, 75.7958814866429710132209167},
		{"x64", X64Integral, 580, 680, 62.609160020237440648826},
		{"y64", Y64Integral, 580, 680, 34.915870018558114867635487},
		{"x64", X64Integral, 680, 780, 0.34978514868460733446581},
	}

	for _, tt := range tests {
		if got := tt.f(tt.a, tt.b); !relativeNear(got, tt.want, 1e-10) {
			t.Errorf("%s(%v, %v) = %.17g, want %.17g", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIntegralsMatchNumeric(t *testing.T) {
	funcs := []struct {
		name     string
		f        func(float64) float64
		integral func(a, b float64) float64
	}{
		{"x31", X31, X31Integral},
		{"y31", Y31, Y31Integral},
		{"z31", Z31, Z31Integral},
		{"x64", X64, X64Integral},
		{"y64", Y64, Y64Integral},
		{"z64", Z64, Z64Integral},
	}
	ranges := [][2]float64{{380, 480}, {430, 470}, {500, 650}, {360, 830}}

	for _, fn := range funcs {
		t.Run(fn.name, func(t *testing.T) {
			for _, r := range ranges {
				want := numerical.Integrate(fn.f, r[0], r[1], 200000)
				if got := fn.integral(r[0], r[1]); !relativeNear(got, want, 1e-8) {
					t.Errorf("[%v, %v]: closed form %.12g, numeric %.12g", r[0], r[1], got, want)
				}
			}
		})
	}
}

func TestIntegralEmptyRange(t *testing.T) {
	for _, o := range []Observer{CIE1931, CIE1964} {
		if got := o.XIntegral(500, 500); got != 0 {
			t.Errorf("%v: XIntegral over empty range = %v", o, got)
		}
		if got := o.YIntegral(600, 500); got != 0 {
			t.Errorf("%v: YIntegral over reversed range = %v", o, got)
		}
	}
	// The 1964 z̄ is zero below its log-normal support.
	if got := Z64Integral(100, 200); got != 0 {
		t.Errorf("Z64Integral(100, 200) = %v, want 0", got)
	}
}

func TestNonNegative(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"x31": X31, "y31": Y31, "z31": Z31,
		"x64": X64, "y64": Y64, "z64": Z64,
	}
	for name, f := range funcs {
		for i := 0; i <= 4000; i++ {
			w := 380 + float64(i)/10
			if v := f(w); !(v >= 0) {
				t.Errorf("%s(%v) = %v is negative", name, w, v)
				break
			}
		}
	}
}

func TestMatchesTabulated(t *testing.T) {
	tests := []struct {
		name             string
		f                func(float64) float64
		table            []float64
		maxError, meanOK float64
	}{
		{"x31", X31, tableX31[:], 0.0139, 0.0049},
		{"y31", Y31, tableY31[:], 0.0074, 0.0021},
		{"z31", Z31, tableZ31[:], 0.0222, 0.0021},
		{"x64", X64, tableX64[:], 0.0470, 0.0099},
		{"y64", Y64, tableY64[:], 0.0254, 0.0092},
		{"z64", Z64, tableZ64[:], 0.0574, 0.0085},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0.0
			for i, w := range tableWaves {
				e := math.Abs(tt.f(w) - tt.table[i])
				if e >= tt.maxError {
					t.Errorf("%v nm: approximation %v, table %v, error %v", w, tt.f(w), tt.table[i], e)
				}
				sum += e
			}
			if mean := sum / float64(len(tableWaves)); mean >= tt.meanOK {
				t.Errorf("mean error %v, want < %v", mean, tt.meanOK)
			}
		})
	}
}

func TestObserverDispatch(t *testing.T) {
	const w = 555.0
	if CIE1931.Y(w) != Y31(w) || CIE1964.Y(w) != Y64(w) {
		t.Error("Y dispatch mismatch")
	}
	if CIE1931.X(w) != X31(w) || CIE1964.Z(w) != Z64(w) {
		t.Error("X/Z dispatch mismatch")
	}
	if CIE1964.ZIntegral(400, 500) != Z64Integral(400, 500) {
		t.Error("ZIntegral dispatch mismatch")
	}
	if CIE1931.String() != "CIE 1931" || Observer(7).Valid() {
		t.Error("observer naming mismatch")
	}
}

func BenchmarkX31Integral(b *testing.B) {
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += X31Integral(400, 405)
	}
	_ = sum
}
