// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Transpose, column scaling and matrix-vector products over the Matrix interface.
//   - Fast-paths on *Dense operate on the flat buffer directly; the generic
//     fallback goes through At/Set and stays bounds-safe.
//
// Determinism:
//   - Fixed i→j loop orders everywhere; no map iteration, no goroutines.

package matrix

import "fmt"

// ---------- operation tags ----------

const (
	opTranspose = "Transpose"
	opScaleCols = "ScaleCols"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix t where t[j,i] = m[i,j].
//
// Contract: m non-nil.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path: flat copy with swapped offsets.
	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// ScaleCols returns a copy of m with every column j multiplied by scale[j]:
//
//	out[i,j] = m[i,j] * scale[j]
//
// Contract: m non-nil; len(scale) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (result not finite).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleCols(m Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(scale, m.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out := m.Clone()

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = out.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
			if err = out.Set(i, j, v*scale[j]); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
