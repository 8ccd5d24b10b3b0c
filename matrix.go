package qgate

import "math/cmplx"

/*
Matrix is the wire format of the unitary capability: a dense row-major
complex matrix. This package performs no matrix algebra — a Matrix is data
handed to an external simulator, which decides whether to apply it directly
or ask for the operation's decomposition instead.
*/
type Matrix [][]complex128

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// IsSquare reports whether every row has as many entries as there are rows.
func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return len(m) > 0
}

// Equal reports element-wise equality within tolerance tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
