package numerical

import (
	"fmt"
	"math"
)

// complementLimit selects the coordinate axis excluded from the
// Gram-Schmidt seed: the first axis whose component exceeds it.
const complementLimit = 0.1

// Determinant returns the determinant of a square matrix given as rows.
// The input is not modified.
func Determinant(rows [][]float64) float64 {
	n := len(rows)
	m := make([][]float64, n)
	for i := range rows {
		if len(rows[i]) != n {
			panic(fmt.Sprintf("numerical: row %d has %d columns, want %d", i, len(rows[i]), n))
		}
		m[i] = append([]float64(nil), rows[i]...)
	}

	det := 1.0
	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if m[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			det = -det
		}
		det *= m[col][col]
		for r := col + 1; r < n; r++ {
			f := m[r][col] / m[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}
	return det
}

// OrthogonalComplement returns the vector orthogonal to N-1 vectors of
// dimension N (the generalized cross product). Component i is the signed
// minor obtained by deleting column i. For orthonormal inputs the result
// is a unit vector.
func OrthogonalComplement(vectors []Vector) Vector {
	n := len(vectors) + 1
	for i, v := range vectors {
		if len(v) != n {
			panic(fmt.Sprintf("numerical: vector %d has dimension %d, want %d", i, len(v), n))
		}
	}

	if n == 2 {
		return Vector{vectors[0][1], -vectors[0][0]}
	}

	res := make(Vector, n)
	minor := make([][]float64, n-1)
	for r := range minor {
		minor[r] = make([]float64, n-1)
	}
	for i := range n {
		for r, v := range vectors {
			c := 0
			for j := range n {
				if j == i {
					continue
				}
				minor[r][c] = v[j]
				c++
			}
		}
		d := Determinant(minor)
		if i&1 == 1 {
			d = -d
		}
		res[i] = d
	}
	return res
}

// OrthogonalComplementOfUnitVector returns N-1 orthonormal vectors that
// together with the unit vector u form an orthonormal basis.
func OrthogonalComplementOfUnitVector(u Vector) []Vector {
	n := len(u)
	if n < 2 {
		panic(fmt.Sprintf("numerical: dimension %d is less than 2", n))
	}

	if n == 2 {
		return []Vector{{u[1], -u[0]}}
	}

	// Axes other than the one u is closest to are not collinear with u.
	exclude := 0
	for ; exclude < n-1; exclude++ {
		if math.Abs(u[exclude]) > complementLimit {
			break
		}
	}

	basis := make([]Vector, 0, n)
	basis = append(basis, u)
	for i := range n {
		if i != exclude {
			basis = append(basis, Axis(n, i))
		}
	}

	for i := 1; i < n; i++ {
		v := basis[i]
		for j := range i {
			v.MultiplyAdd(-v.Dot(basis[j]), basis[j])
		}
		basis[i] = v.Normalize()
	}

	return basis[1:]
}
