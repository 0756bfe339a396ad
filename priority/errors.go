// SPDX-License-Identifier: MIT
// Package priority: sentinel errors.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Both sentinels describe caller bugs; nothing here is retryable.
//   • Lower-level causes (comparison.ErrShapeMismatch, matrix.ErrNaNInf, ...)
//     stay matchable through the same chain.

package priority

import "errors"

// ErrInvalidMatrix indicates the matrix key set does not match the entity id
// set (including an empty or repeated entity list) or a cell is not finite.
var ErrInvalidMatrix = errors.New("priority: invalid matrix")

// ErrDegenerateInput indicates a column summing to zero or a zero priority,
// i.e. a matrix that was never populated, not even on the diagonal.
var ErrDegenerateInput = errors.New("priority: degenerate input")
