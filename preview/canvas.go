package preview

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pbr/internal/parallel"
	"github.com/gogpu/pbr/internal/srgb"
)

const (
	labelHeight   = 18
	labelBaseline = 13
	labelFontSize = 11
)

var (
	backgroundColor = imgcolor.RGBA64{R: 0x1800, G: 0x1800, B: 0x1800, A: 0xffff}
	labelColor      = imgcolor.RGBA64{R: 0xe000, G: 0xe000, B: 0xe000, A: 0xffff}
)

// labelFont is parsed once. Faces are not safe for concurrent use, so
// every render creates its own.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// pixelFunc returns the linear RGB of swatch i at (x, y) in [-1, 1]²,
// with y pointing up. ok is false for background pixels.
type pixelFunc func(i int, x, y float64) (rgb [3]float32, ok bool)

// render draws one swatch per label side by side, supersampled and
// then downscaled, with the labels underneath.
func render(o options, labels []string, pixel pixelFunc) (*image.RGBA64, error) {
	count := len(labels)
	side := o.size * o.supersampling
	hi := image.NewRGBA64(image.Rect(0, 0, count*side, side))

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), count)
	for i := range work {
		work[i] = func() {
			drawSwatch(hi, i, side, pixel)
		}
	}
	pool.ExecuteAll(work)

	height := o.size
	if o.labels {
		height += labelHeight
	}
	dst := image.NewRGBA64(image.Rect(0, 0, count*o.size, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(backgroundColor), image.Point{}, xdraw.Src)

	swatches := image.Rect(0, 0, count*o.size, o.size)
	if o.supersampling == 1 {
		xdraw.Copy(dst, image.Point{}, hi, hi.Bounds(), xdraw.Src, nil)
	} else {
		xdraw.CatmullRom.Scale(dst, swatches, hi, hi.Bounds(), xdraw.Src, nil)
	}

	if o.labels {
		if err := drawLabels(dst, o.size, labels); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func drawSwatch(dst *image.RGBA64, i, side int, pixel pixelFunc) {
	scale := 2 / float64(side)
	for py := range side {
		y := 1 - (float64(py)+0.5)*scale
		for px := range side {
			x := (float64(px)+0.5)*scale - 1
			c := backgroundColor
			if rgb, ok := pixel(i, x, y); ok {
				c = imgcolor.RGBA64{
					R: srgb.LinearToUint16(float64(rgb[0])),
					G: srgb.LinearToUint16(float64(rgb[1])),
					B: srgb.LinearToUint16(float64(rgb[2])),
					A: 0xffff,
				}
			}
			dst.SetRGBA64(i*side+px, py, c)
		}
	}
}

// drawLabels centers each label under its swatch, clipped to the swatch
// width.
func drawLabels(dst *image.RGBA64, size int, labels []string) error {
	f, err := labelFont()
	if err != nil {
		return fmt.Errorf("preview: parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("preview: label face: %w", err)
	}
	defer face.Close()

	for i, label := range labels {
		if label == "" {
			continue
		}
		cell := image.Rect(i*size, size, (i+1)*size, size+labelHeight)
		d := &font.Drawer{
			Dst:  dst.SubImage(cell).(*image.RGBA64),
			Src:  image.NewUniform(labelColor),
			Face: face,
		}
		width := d.MeasureString(label).Round()
		d.Dot = fixed.P(cell.Min.X+max((size-width)/2, 1), size+labelBaseline)
		d.DrawString(label)
	}
	return nil
}
