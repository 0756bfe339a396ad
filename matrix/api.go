// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for the reductions used by priority derivation.
//   - Avoid logic duplication: each facade delegates to a canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import "math"

// ones returns a vector of n ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}

	return v
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return MatVec(m, ones(m.Cols()))
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: Transpose(m) then MatVec with ones(rows).
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return MatVec(mt, ones(mt.Cols()))
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= eps, with eps from WithEpsilon (DefaultEpsilon).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rc).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf("AllClose", ErrDimensionMismatch)
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// Sum returns the plain sum of a vector (fixed left-to-right order).
func Sum(x []float64) float64 {
	acc := ZeroSum
	for _, v := range x {
		acc += v
	}

	return acc
}
