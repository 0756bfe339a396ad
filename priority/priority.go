// SPDX-License-Identifier: MIT

package priority

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/matrix"
)

// Consistency is the consistency diagnostic of one matrix.
type Consistency struct {
	LambdaMax    float64 `json:"lambdaMax"`
	CI           float64 `json:"ci"`
	CR           float64 `json:"cr"`
	RI           float64 `json:"ri"`
	IsConsistent bool    `json:"isConsistent"`
}

// Result is derived from one matrix and never mutated afterwards.
// Weights sum to 1 within floating-point tolerance.
type Result struct {
	Weights     map[string]float64 `json:"weights"`
	Consistency Consistency        `json:"consistency"`
	Normalized  comparison.Matrix  `json:"normalizedMatrix"`

	entities []entity.Entity
}

// Ranked is one row of a ranking.
type Ranked struct {
	Rank   int           `json:"rank"`
	Entity entity.Entity `json:"entity"`
	Weight float64       `json:"weight"`
}

// Compute derives the priority vector and consistency diagnostic of m over es.
// Implementation:
//   - Stage 1: lay m out densely in entity order (ErrInvalidMatrix on mismatch).
//   - Stage 2: column sums, column normalization, row means → weights.
//   - Stage 3: M·w, λmax, CI, RI, CR and the verdict.
//
// Errors:
//   - ErrInvalidMatrix: empty entity list, repeated ids, id-set mismatch, non-finite cell.
//   - ErrDegenerateInput: a zero column sum or a zero weight.
//
// Complexity: O(n²) time and memory.
func Compute(m comparison.Matrix, es []entity.Entity, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape.
	if len(es) == 0 {
		return nil, fmt.Errorf("Compute: empty entity set: %w", ErrInvalidMatrix)
	}
	d, err := comparison.Dense(m, es)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w: %w", ErrInvalidMatrix, err)
	}
	n := len(es)
	fn := float64(n)

	// Stage 2: priority vector.
	colSums, err := matrix.ColSums(d)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	inv := make([]float64, n)
	for j, s := range colSums {
		if s == 0 {
			return nil, fmt.Errorf("Compute: column %q sums to zero: %w", es[j].ID, ErrDegenerateInput)
		}
		inv[j] = 1 / s
	}
	normalized, err := matrix.ScaleCols(d, inv)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	rowSums, err := matrix.RowSums(normalized)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	w := make([]float64, n)
	for i, s := range rowSums {
		w[i] = s / fn
	}

	// Stage 3: consistency.
	wsv, err := matrix.MatVec(d, w)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	ratios := make([]float64, n)
	for i := range w {
		if w[i] == 0 {
			return nil, fmt.Errorf("Compute: weight of %q is zero: %w", es[i].ID, ErrDegenerateInput)
		}
		ratios[i] = wsv[i] / w[i]
	}
	cons := Consistency{LambdaMax: matrix.Sum(ratios) / fn}
	if n > 1 {
		cons.CI = (cons.LambdaMax - fn) / (fn - 1)
	}
	cons.RI = randomIndexWith(n, o.riFallback)
	if cons.RI != 0 {
		cons.CR = cons.CI / cons.RI
	}
	cons.IsConsistent = cons.CR < o.threshold

	norm, err := comparison.FromDense(normalized, es)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	weights := make(map[string]float64, n)
	for i, e := range es {
		weights[e.ID] = w[i]
	}
	order := make([]entity.Entity, n)
	copy(order, es)

	return &Result{
		Weights:     weights,
		Consistency: cons,
		Normalized:  norm,
		entities:    order,
	}, nil
}

// Ranking orders the entities by descending weight; ties keep input order.
func (r *Result) Ranking() []Ranked {
	return Rank(r.Weights, r.entities)
}

// Rank orders es by descending score; ties keep input order. Ranks start at 1.
// Entities missing from scores rank with a score of 0.
func Rank(scores map[string]float64, es []entity.Entity) []Ranked {
	out := make([]Ranked, len(es))
	for i, e := range es {
		out[i] = Ranked{Entity: e, Weight: scores[e.ID]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
