// SPDX-License-Identifier: MIT
// Package comparison: sentinel errors. Match with errors.Is; call sites wrap
// with a method tag and the offending ids.

package comparison

import "errors"

var (
	// ErrUnknownEntity is returned when a cell refers to an id outside the matrix.
	ErrUnknownEntity = errors.New("comparison: unknown entity id")

	// ErrDiagonalEdit is returned when an edit targets M[i][i]; the diagonal is fixed at 1.
	ErrDiagonalEdit = errors.New("comparison: diagonal is fixed")

	// ErrInvalidIntensity is returned for negative, NaN or infinite intensities,
	// and for slider positions outside -8..8.
	ErrInvalidIntensity = errors.New("comparison: invalid intensity")

	// ErrShapeMismatch is returned when the matrix key set disagrees with the
	// entity id set on either axis, or the entity list repeats an id.
	ErrShapeMismatch = errors.New("comparison: matrix does not match entity set")

	// ErrNotReciprocal is returned when a set pair violates M[i][j]*M[j][i] == 1.
	ErrNotReciprocal = errors.New("comparison: matrix is not reciprocal")
)
