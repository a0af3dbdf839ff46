package numerical

import "fmt"

// Grid1D linearly interpolates values tabulated at uniformly spaced
// points over [0, 1]. Point i sits at i/(len-1).
type Grid1D struct {
	values []float64
}

// NewGrid1D returns a grid over a copy of values. At least two values
// are required.
func NewGrid1D(values []float64) (*Grid1D, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("numerical: grid needs at least 2 values, got %d", len(values))
	}
	return &Grid1D{values: append([]float64(nil), values...)}, nil
}

// At returns the interpolated value at x. x is clamped to [0, 1].
func (g *Grid1D) At(x float64) float64 {
	i, t := gridCell(x, len(g.values))
	return Lerp(g.values[i], g.values[i+1], t)
}

// Grid2D bilinearly interpolates a rows×cols table stored row-major over
// [0, 1]×[0, 1]. The first coordinate selects rows.
type Grid2D struct {
	values     []float64
	rows, cols int
}

// NewGrid2D returns a grid over a copy of values.
func NewGrid2D(rows, cols int, values []float64) (*Grid2D, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("numerical: grid needs at least 2x2 values, got %dx%d", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("numerical: grid %dx%d needs %d values, got %d", rows, cols, rows*cols, len(values))
	}
	return &Grid2D{values: append([]float64(nil), values...), rows: rows, cols: cols}, nil
}

// At returns the interpolated value at (x, y). Both are clamped to [0, 1].
func (g *Grid2D) At(x, y float64) float64 {
	i, tx := gridCell(x, g.rows)
	j, ty := gridCell(y, g.cols)
	v00 := g.values[i*g.cols+j]
	v01 := g.values[i*g.cols+j+1]
	v10 := g.values[(i+1)*g.cols+j]
	v11 := g.values[(i+1)*g.cols+j+1]
	return Lerp(Lerp(v00, v01, ty), Lerp(v10, v11, ty), tx)
}

// Row returns a copy of row i.
func (g *Grid2D) Row(i int) []float64 {
	return append([]float64(nil), g.values[i*g.cols:(i+1)*g.cols]...)
}

// gridCell returns the lower index of the cell containing x and the
// fractional position inside it.
func gridCell(x float64, count int) (int, float64) {
	if !(x > 0) {
		return 0, 0
	}
	if x >= 1 {
		return count - 2, 1
	}
	p := x * float64(count-1)
	i := int(p)
	if i > count-2 {
		i = count - 2
	}
	return i, p - float64(i)
}
