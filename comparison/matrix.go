// SPDX-License-Identifier: MIT

package comparison

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/matrix"
)

// Unset marks a cell the user has not filled in yet. It is never a genuine
// intensity.
const Unset = 0.0

// Diagonal is the fixed value of every M[i][i].
const Diagonal = 1.0

// Matrix is a pairwise-comparison matrix keyed by entity ID on both axes.
// M[row][col] = v reads "row is v times as important as col".
type Matrix map[string]map[string]float64

// Build returns the initial matrix for es: diagonal 1, all other cells Unset.
// Ids are assumed unique (the caller owns entity bookkeeping).
// A single entity yields {id: {id: 1}}.
//
// Complexity: O(n²).
func Build(es []entity.Entity) Matrix {
	m := make(Matrix, len(es))
	for _, row := range es {
		cells := make(map[string]float64, len(es))
		for _, col := range es {
			if row.ID == col.ID {
				cells[col.ID] = Diagonal
			} else {
				cells[col.ID] = Unset
			}
		}
		m[row.ID] = cells
	}

	return m
}

// Clone returns a deep copy of m. A nil matrix clones to nil.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for row, cells := range m {
		cp := make(map[string]float64, len(cells))
		for col, v := range cells {
			cp[col] = v
		}
		out[row] = cp
	}

	return out
}

// At returns M[row][col] and whether the cell exists.
func (m Matrix) At(row, col string) (float64, bool) {
	cells, ok := m[row]
	if !ok {
		return 0, false
	}
	v, ok := cells[col]

	return v, ok
}

// Set performs one logical edit and returns the edited copy:
// M[row][col] = v and M[col][row] = 1/v, or both Unset when v == 0.
// The receiver is not modified.
//
// Errors:
//   - ErrDiagonalEdit when row == col.
//   - ErrInvalidIntensity when v is negative, NaN or ±Inf.
//   - ErrUnknownEntity when either id is not a row and column of m.
//
// Complexity: O(n²) for the copy.
func (m Matrix) Set(row, col string, v float64) (Matrix, error) {
	if row == col {
		return nil, fmt.Errorf("Set(%q,%q): %w", row, col, ErrDiagonalEdit)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("Set(%q,%q,%g): %w", row, col, v, ErrInvalidIntensity)
	}
	if _, ok := m.At(row, col); !ok {
		return nil, fmt.Errorf("Set(%q,%q): %w", row, col, ErrUnknownEntity)
	}
	if _, ok := m.At(col, row); !ok {
		return nil, fmt.Errorf("Set(%q,%q): %w", row, col, ErrUnknownEntity)
	}

	out := m.Clone()
	out[row][col] = v
	if v == Unset {
		out[col][row] = Unset
	} else {
		out[col][row] = 1 / v
	}

	return out, nil
}

// Progress counts filled upper-triangular cells (i < j in entity order).
// Missing cells count as unfilled. total is n(n-1)/2.
func Progress(m Matrix, es []entity.Entity) (done, total int) {
	for i := range es {
		for j := i + 1; j < len(es); j++ {
			total++
			if v, ok := m.At(es[i].ID, es[j].ID); ok && v != Unset {
				done++
			}
		}
	}

	return done, total
}

// IsComplete reports whether every upper-triangular cell is filled.
// A matrix over fewer than two entities is trivially complete.
func IsComplete(m Matrix, es []entity.Entity) bool {
	done, total := Progress(m, es)

	return done == total
}

// Validate checks that m is square over exactly the ids of es: one row per
// entity, each row holding exactly one cell per entity, no extra keys, and no
// repeated entity ids.
//
// Errors: ErrShapeMismatch (wrapped with the offending id).
// Complexity: O(n²).
func Validate(m Matrix, es []entity.Entity) error {
	if err := entity.ValidateUnique(es); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrShapeMismatch, err)
	}
	if len(m) != len(es) {
		return fmt.Errorf("Validate: %d rows for %d entities: %w", len(m), len(es), ErrShapeMismatch)
	}
	for _, row := range es {
		cells, ok := m[row.ID]
		if !ok {
			return fmt.Errorf("Validate: missing row %q: %w", row.ID, ErrShapeMismatch)
		}
		if len(cells) != len(es) {
			return fmt.Errorf("Validate: row %q has %d cells for %d entities: %w", row.ID, len(cells), len(es), ErrShapeMismatch)
		}
		for _, col := range es {
			if _, ok = cells[col.ID]; !ok {
				return fmt.Errorf("Validate: missing cell (%q,%q): %w", row.ID, col.ID, ErrShapeMismatch)
			}
		}
	}

	return nil
}

// Dense lays m out as a dense matrix in entity order: row i / column j is
// es[i] / es[j]. The default finite-value policy applies.
//
// Errors: ErrShapeMismatch from Validate; matrix.ErrNaNInf for a non-finite cell.
// Complexity: O(n²).
func Dense(m Matrix, es []entity.Entity) (*matrix.Dense, error) {
	if err := Validate(m, es); err != nil {
		return nil, err
	}
	if len(es) == 0 {
		return nil, fmt.Errorf("Dense: %w", matrix.ErrInvalidDimensions)
	}
	d, err := matrix.NewDense(len(es), len(es))
	if err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	for i, row := range es {
		for j, col := range es {
			if err = d.Set(i, j, m[row.ID][col.ID]); err != nil {
				return nil, fmt.Errorf("Dense(%q,%q): %w", row.ID, col.ID, err)
			}
		}
	}

	return d, nil
}

// FromDense is the inverse of Dense: it keys d by es in order.
// Errors: matrix.ErrDimensionMismatch when d is not len(es)×len(es).
func FromDense(d matrix.Matrix, es []entity.Entity) (Matrix, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	if d.Rows() != len(es) {
		return nil, fmt.Errorf("FromDense: %w", matrix.ErrDimensionMismatch)
	}
	out := make(Matrix, len(es))
	for i, row := range es {
		cells := make(map[string]float64, len(es))
		for j, col := range es {
			v, err := d.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("FromDense: %w", err)
			}
			cells[col.ID] = v
		}
		out[row.ID] = cells
	}

	return out, nil
}

// CheckReciprocal verifies M[i][j] == 1/M[j][i] within eps for every set pair,
// that Unset cells come in pairs, and that the diagonal is 1. eps must be a
// finite non-negative number (matrix.WithEpsilon panics otherwise).
//
// Errors: ErrShapeMismatch, matrix.ErrNaNInf, ErrNotReciprocal.
// Complexity: O(n²).
func CheckReciprocal(m Matrix, es []entity.Entity, eps float64) error {
	d, err := Dense(m, es)
	if err != nil {
		return fmt.Errorf("CheckReciprocal: %w", err)
	}
	n := d.Rows()
	r, err := matrix.NewDense(n, n)
	if err != nil {
		return fmt.Errorf("CheckReciprocal: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		if v, _ = d.At(i, i); v != Diagonal {
			return fmt.Errorf("CheckReciprocal: diagonal %q = %g: %w", es[i].ID, v, ErrNotReciprocal)
		}
		for j = 0; j < n; j++ {
			v, _ = d.At(j, i)
			if v != Unset {
				v = 1 / v
			}
			if err = r.Set(i, j, v); err != nil {
				return fmt.Errorf("CheckReciprocal: %w", err)
			}
		}
	}
	ok, err := matrix.AllClose(d, r, matrix.WithEpsilon(eps))
	if err != nil {
		return fmt.Errorf("CheckReciprocal: %w", err)
	}
	if !ok {
		return fmt.Errorf("CheckReciprocal: %w", ErrNotReciprocal)
	}

	return nil
}
