// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/priority"
)

// Local is the contribution of one criterion.
type Local struct {
	Criterion entity.Entity      `json:"criterion"`
	Weight    float64            `json:"weight"`
	Scores    map[string]float64 `json:"scores"`
	// Result is nil when the criterion fell back to uniform scores.
	Result   *priority.Result `json:"result,omitempty"`
	Fallback bool             `json:"fallback"`
}

// Synthesis is the detailed outcome of a two-level hierarchy.
type Synthesis struct {
	Locals       []Local            `json:"locals"`
	GlobalScores map[string]float64 `json:"globalScores"`
	Ranking      []priority.Ranked  `json:"ranking"`
	// Provisional is true when at least one criterion used the uniform fallback.
	Provisional bool `json:"provisional"`
}

// Aggregate returns the global score of every alternative.
// See Synthesize for the errors and the fallback rule.
func Aggregate(
	criteriaWeights map[string]float64,
	matrices map[string]comparison.Matrix,
	alternatives, criteria []entity.Entity,
	opts ...priority.Option,
) (map[string]float64, error) {
	s, err := Synthesize(criteriaWeights, matrices, alternatives, criteria, opts...)
	if err != nil {
		return nil, err
	}

	return s.GlobalScores, nil
}

// Synthesize computes local weights per criterion and combines them.
// Implementation:
//   - Stage 1: validate inputs (non-empty sets, weight per criterion, known matrix keys).
//   - Stage 2: run priority.Compute for every present matrix concurrently;
//     absent or nil matrices get uniform 1/|alternatives| scores.
//   - Stage 3: score[a] = Σ_c w[c]·local[c][a], in criteria order.
//
// Errors:
//   - ErrNoCriteria, ErrNoAlternatives, ErrMissingWeight, ErrUnknownCriterion.
//   - priority.ErrInvalidMatrix / ErrDegenerateInput wrapped with the criterion id.
//
// Complexity: O(|C|·|A|²).
func Synthesize(
	criteriaWeights map[string]float64,
	matrices map[string]comparison.Matrix,
	alternatives, criteria []entity.Entity,
	opts ...priority.Option,
) (*Synthesis, error) {
	// Stage 1: validate.
	if len(criteria) == 0 {
		return nil, fmt.Errorf("Synthesize: %w", ErrNoCriteria)
	}
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("Synthesize: %w", ErrNoAlternatives)
	}
	for _, c := range criteria {
		if _, ok := criteriaWeights[c.ID]; !ok {
			return nil, fmt.Errorf("Synthesize(%q): %w", c.ID, ErrMissingWeight)
		}
	}
	for id := range matrices {
		if entity.Index(criteria, id) < 0 {
			return nil, fmt.Errorf("Synthesize(%q): %w", id, ErrUnknownCriterion)
		}
	}

	// Stage 2: local priorities; each goroutine writes only its own slot.
	locals := make([]Local, len(criteria))
	var g errgroup.Group
	for i, c := range criteria {
		locals[i] = Local{Criterion: c, Weight: criteriaWeights[c.ID]}
		m := matrices[c.ID]
		if m == nil {
			locals[i].Scores = Uniform(alternatives)
			locals[i].Fallback = true
			continue
		}
		g.Go(func() error {
			res, err := priority.Compute(m, alternatives, opts...)
			if err != nil {
				return fmt.Errorf("Synthesize(%q): %w", c.ID, err)
			}
			locals[i].Result = res
			locals[i].Scores = res.Weights

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3: weighted sum in fixed criteria order.
	out := &Synthesis{Locals: locals, GlobalScores: make(map[string]float64, len(alternatives))}
	for _, a := range alternatives {
		score := 0.0
		for _, l := range locals {
			score += l.Weight * l.Scores[a.ID]
		}
		out.GlobalScores[a.ID] = score
	}
	for _, l := range locals {
		if l.Fallback {
			out.Provisional = true
			break
		}
	}
	out.Ranking = priority.Rank(out.GlobalScores, alternatives)

	return out, nil
}

// Uniform assigns 1/|es| to every entity.
func Uniform(es []entity.Entity) map[string]float64 {
	out := make(map[string]float64, len(es))
	for _, e := range es {
		out[e.ID] = 1 / float64(len(es))
	}

	return out
}
