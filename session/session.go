// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/priority"
)

// Step is a position in the four-step flow.
type Step int

const (
	StepProblem Step = iota + 1
	StepEntities
	StepComparison
	StepResults
)

// Results holds everything Calculate derives from one snapshot.
type Results struct {
	Criteria *priority.Result `json:"criteria"`
	// Hierarchy is nil when the analysis has no alternatives.
	Hierarchy *hierarchy.Synthesis `json:"hierarchy,omitempty"`
}

// State is one immutable snapshot of an analysis. The zero value is not
// usable; start from New.
type State struct {
	cfg *config

	step         Step
	problem      string
	criteria     []entity.Entity
	alternatives []entity.Entity
	matrix       comparison.Matrix
	altMatrices  map[string]comparison.Matrix
	results      *Results
}

// New returns the initial snapshot: step 1, nothing defined.
func New(opts ...Option) State {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}

	return State{cfg: cfg, step: StepProblem, matrix: comparison.Matrix{}, altMatrices: map[string]comparison.Matrix{}}
}

// Step returns the current step.
func (s State) Step() Step { return s.step }

// Problem returns the problem statement.
func (s State) Problem() string { return s.problem }

// Criteria returns a copy of the criteria.
func (s State) Criteria() []entity.Entity { return append([]entity.Entity(nil), s.criteria...) }

// Alternatives returns a copy of the alternatives.
func (s State) Alternatives() []entity.Entity {
	return append([]entity.Entity(nil), s.alternatives...)
}

// Matrix returns a copy of the criteria comparison matrix.
func (s State) Matrix() comparison.Matrix { return s.matrix.Clone() }

// AlternativeMatrix returns a copy of the alternatives matrix under criterion id.
func (s State) AlternativeMatrix(id string) (comparison.Matrix, bool) {
	m, ok := s.altMatrices[id]

	return m.Clone(), ok
}

// Results returns the last calculation, or nil if none is current.
func (s State) Results() *Results { return s.results }

// Progress reports filled vs total criteria comparisons.
func (s State) Progress() (done, total int) { return comparison.Progress(s.matrix, s.criteria) }

// AlternativeProgress reports filled vs total comparisons under criterion id.
func (s State) AlternativeProgress(id string) (done, total int, err error) {
	m, ok := s.altMatrices[id]
	if !ok {
		return 0, 0, fmt.Errorf("AlternativeProgress(%q): %w", id, ErrUnknownCriterion)
	}
	done, total = comparison.Progress(m, s.alternatives)

	return done, total, nil
}

// SetProblem stores the problem statement.
func (s State) SetProblem(text string) State {
	s.problem = text

	return s
}

// SetCriteriaCount replaces the criteria with n fresh ones (c1..cn) and
// rebuilds the criteria matrix and every alternatives matrix.
//
// Errors: entity.ErrCountOutOfRange.
func (s State) SetCriteriaCount(n int) (State, error) {
	cs, err := entity.NewSet(entity.Criterion, n)
	if err != nil {
		return s, fmt.Errorf("SetCriteriaCount: %w", err)
	}
	s.criteria = cs
	s.matrix = comparison.Build(cs)
	s.altMatrices = buildAltMatrices(cs, s.alternatives)
	s.results = nil
	s.cfg.logger.Debug("criteria reset", "count", n)

	return s, nil
}

// SetAlternativesCount replaces the alternatives with n fresh ones (a1..an)
// and rebuilds every alternatives matrix. n == 0 removes the alternatives
// level altogether.
//
// Errors: entity.ErrCountOutOfRange.
func (s State) SetAlternativesCount(n int) (State, error) {
	var as []entity.Entity
	if n != 0 {
		var err error
		if as, err = entity.NewSet(entity.Alternative, n); err != nil {
			return s, fmt.Errorf("SetAlternativesCount: %w", err)
		}
	}
	s.alternatives = as
	s.altMatrices = buildAltMatrices(s.criteria, as)
	s.results = nil
	s.cfg.logger.Debug("alternatives reset", "count", n)

	return s, nil
}

// RenameCriterion changes a criterion name. Results stay valid.
func (s State) RenameCriterion(id, name string) (State, error) {
	cs, err := entity.Rename(s.criteria, id, name)
	if err != nil {
		return s, fmt.Errorf("RenameCriterion: %w", err)
	}
	s.criteria = cs

	return s, nil
}

// RenameAlternative changes an alternative name. Results stay valid.
func (s State) RenameAlternative(id, name string) (State, error) {
	as, err := entity.Rename(s.alternatives, id, name)
	if err != nil {
		return s, fmt.Errorf("RenameAlternative: %w", err)
	}
	s.alternatives = as

	return s, nil
}

// UpdateComparison records one criteria judgement (and its reciprocal).
//
// Errors: comparison.ErrUnknownEntity, ErrDiagonalEdit, ErrInvalidIntensity.
func (s State) UpdateComparison(row, col string, v float64) (State, error) {
	m, err := s.matrix.Set(row, col, v)
	if err != nil {
		return s, fmt.Errorf("UpdateComparison: %w", err)
	}
	s.matrix = m
	s.results = nil

	return s, nil
}

// UpdateAlternativeComparison records one alternatives judgement under criterion id.
//
// Errors: ErrUnknownCriterion plus the comparison.Set errors.
func (s State) UpdateAlternativeComparison(id, row, col string, v float64) (State, error) {
	cur, ok := s.altMatrices[id]
	if !ok {
		return s, fmt.Errorf("UpdateAlternativeComparison(%q): %w", id, ErrUnknownCriterion)
	}
	m, err := cur.Set(row, col, v)
	if err != nil {
		return s, fmt.Errorf("UpdateAlternativeComparison(%q): %w", id, err)
	}
	next := make(map[string]comparison.Matrix, len(s.altMatrices))
	for k, v := range s.altMatrices {
		next[k] = v
	}
	next[id] = m
	s.altMatrices = next
	s.results = nil

	return s, nil
}

// Calculate derives the criteria priorities and, when alternatives exist,
// the global alternative scores.
//
// Errors: ErrNoCriteria, ErrIncompleteMatrix, and any priority/hierarchy error.
func (s State) Calculate() (State, error) {
	if len(s.criteria) == 0 {
		return s, fmt.Errorf("Calculate: %w", ErrNoCriteria)
	}
	if !comparison.IsComplete(s.matrix, s.criteria) {
		done, total := s.Progress()
		return s, fmt.Errorf("Calculate: %d of %d comparisons: %w", done, total, ErrIncompleteMatrix)
	}
	res, err := priority.Compute(s.matrix, s.criteria, s.cfg.priority...)
	if err != nil {
		return s, fmt.Errorf("Calculate: %w", err)
	}
	out := &Results{Criteria: res}
	s.cfg.logger.Info("criteria priorities computed",
		"n", len(s.criteria),
		"cr", res.Consistency.CR,
		"consistent", res.Consistency.IsConsistent,
	)

	if len(s.alternatives) > 0 {
		complete := make(map[string]comparison.Matrix, len(s.altMatrices))
		for id, m := range s.altMatrices {
			if comparison.IsComplete(m, s.alternatives) {
				complete[id] = m
			}
		}
		syn, err := hierarchy.Synthesize(res.Weights, complete, s.alternatives, s.criteria, s.cfg.priority...)
		if err != nil {
			return s, fmt.Errorf("Calculate: %w", err)
		}
		out.Hierarchy = syn
		s.cfg.logger.Info("alternative scores computed",
			"alternatives", len(s.alternatives),
			"provisional", syn.Provisional,
		)
	}
	s.results = out

	return s, nil
}

// Next advances one step, stopping at StepResults.
func (s State) Next() State {
	s.step = min(s.step+1, StepResults)

	return s
}

// Prev goes back one step, stopping at StepProblem.
func (s State) Prev() State {
	s.step = max(s.step-1, StepProblem)

	return s
}

// Reset returns a fresh snapshot that keeps the configured options.
func (s State) Reset() State {
	return State{cfg: s.cfg, step: StepProblem, matrix: comparison.Matrix{}, altMatrices: map[string]comparison.Matrix{}}
}

// buildAltMatrices builds one empty alternatives matrix per criterion.
func buildAltMatrices(cs, as []entity.Entity) map[string]comparison.Matrix {
	out := make(map[string]comparison.Matrix, len(cs))
	for _, c := range cs {
		out[c.ID] = comparison.Build(as)
	}

	return out
}
