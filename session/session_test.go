package session_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// fill sets every upper-triangular criteria cell to v.
func fill(t *testing.T, s session.State, v float64) session.State {
	t.Helper()
	cs := s.Criteria()
	var err error
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			s, err = s.UpdateComparison(cs[i].ID, cs[j].ID, v)
			require.NoError(t, err)
		}
	}

	return s
}

func TestNew_Initial(t *testing.T) {
	s := session.New()
	assert.Equal(t, session.StepProblem, s.Step())
	assert.Empty(t, s.Criteria())
	assert.Nil(t, s.Results())

	_, err := s.Calculate()
	assert.ErrorIs(t, err, session.ErrNoCriteria)
}

func TestSteps_Clamp(t *testing.T) {
	s := session.New().Prev()
	assert.Equal(t, session.StepProblem, s.Step())
	s = s.Next().Next().Next().Next()
	assert.Equal(t, session.StepResults, s.Step())
}

func TestSetCriteriaCount_RebuildsMatrices(t *testing.T) {
	s, err := session.New().SetAlternativesCount(2)
	require.NoError(t, err)
	s, err = s.SetCriteriaCount(3)
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3"}, entity.IDs(s.Criteria()))
	assert.Equal(t, comparison.Build(s.Criteria()), s.Matrix())
	for _, c := range s.Criteria() {
		m, ok := s.AlternativeMatrix(c.ID)
		require.True(t, ok)
		assert.Equal(t, comparison.Build(s.Alternatives()), m)
	}

	_, err = s.SetCriteriaCount(1)
	assert.ErrorIs(t, err, entity.ErrCountOutOfRange)
	_, err = s.SetAlternativesCount(8)
	assert.ErrorIs(t, err, entity.ErrCountOutOfRange)
}

// TestSnapshotsAreImmutable checks that transitions never touch the receiver.
func TestSnapshotsAreImmutable(t *testing.T) {
	s0, err := session.New().SetCriteriaCount(2)
	require.NoError(t, err)
	s1, err := s0.UpdateComparison("c1", "c2", 5)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s0.Matrix()["c1"]["c2"])
	assert.Equal(t, 5.0, s1.Matrix()["c1"]["c2"])
	assert.Equal(t, 0.2, s1.Matrix()["c2"]["c1"])

	// Mutating a returned copy does not leak into the state.
	m := s1.Matrix()
	m["c1"]["c2"] = 9
	assert.Equal(t, 5.0, s1.Matrix()["c1"]["c2"])

	s2 := s1.SetProblem("Pick a car")
	assert.Equal(t, "", s1.Problem())
	assert.Equal(t, "Pick a car", s2.Problem())
}

func TestCalculate_GatesOnCompleteness(t *testing.T) {
	s, err := session.New().SetCriteriaCount(3)
	require.NoError(t, err)
	s, err = s.UpdateComparison("c1", "c2", 3)
	require.NoError(t, err)

	done, total := s.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)

	_, err = s.Calculate()
	assert.ErrorIs(t, err, session.ErrIncompleteMatrix)

	s = fill(t, s, 1)
	s, err = s.Calculate()
	require.NoError(t, err)
	require.NotNil(t, s.Results())
	for _, w := range s.Results().Criteria.Weights {
		assert.InDelta(t, 1.0/3, w, tol)
	}
	assert.Nil(t, s.Results().Hierarchy)
}

func TestEditDropsResults(t *testing.T) {
	s, err := session.New().SetCriteriaCount(2)
	require.NoError(t, err)
	s = fill(t, s, 2)
	s, err = s.Calculate()
	require.NoError(t, err)
	require.NotNil(t, s.Results())

	renamed, err := s.RenameCriterion("c1", "Price")
	require.NoError(t, err)
	assert.NotNil(t, renamed.Results(), "renaming keeps results")
	assert.Equal(t, "Price", renamed.Criteria()[0].Name)

	edited, err := s.UpdateComparison("c1", "c2", 4)
	require.NoError(t, err)
	assert.Nil(t, edited.Results())
	assert.NotNil(t, s.Results(), "old snapshot keeps its results")
}

func TestCalculate_Hierarchy(t *testing.T) {
	s, err := session.New().SetCriteriaCount(2)
	require.NoError(t, err)
	s, err = s.SetAlternativesCount(2)
	require.NoError(t, err)
	s, err = s.UpdateComparison("c1", "c2", 1.5) // weights 0.6 / 0.4
	require.NoError(t, err)
	s, err = s.UpdateAlternativeComparison("c1", "a1", "a2", 7.0/3)
	require.NoError(t, err)

	done, total, err := s.AlternativeProgress("c2")
	require.NoError(t, err)
	assert.Equal(t, 0, done)
	assert.Equal(t, 1, total)

	// c2 is still incomplete: uniform fallback, provisional result.
	s, err = s.Calculate()
	require.NoError(t, err)
	h := s.Results().Hierarchy
	require.NotNil(t, h)
	assert.True(t, h.Provisional)
	assert.InDelta(t, 0.6*0.7+0.4*0.5, h.GlobalScores["a1"], tol)

	s, err = s.UpdateAlternativeComparison("c2", "a1", "a2", 0.25)
	require.NoError(t, err)
	s, err = s.Calculate()
	require.NoError(t, err)
	h = s.Results().Hierarchy
	assert.False(t, h.Provisional)
	assert.InDelta(t, 0.5, h.GlobalScores["a1"], tol)
	assert.InDelta(t, 0.5, h.GlobalScores["a2"], tol)

	_, err = s.UpdateAlternativeComparison("c9", "a1", "a2", 2)
	assert.ErrorIs(t, err, session.ErrUnknownCriterion)
	_, _, err = s.AlternativeProgress("c9")
	assert.ErrorIs(t, err, session.ErrUnknownCriterion)
}

func TestUpdateComparison_Errors(t *testing.T) {
	s, err := session.New().SetCriteriaCount(2)
	require.NoError(t, err)
	_, err = s.UpdateComparison("c1", "c1", 3)
	assert.ErrorIs(t, err, comparison.ErrDiagonalEdit)
	_, err = s.UpdateComparison("c1", "x", 3)
	assert.ErrorIs(t, err, comparison.ErrUnknownEntity)
	_, err = s.RenameAlternative("a1", "X")
	assert.ErrorIs(t, err, entity.ErrUnknownEntity)
}

func TestOptions_ThresholdAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	s, err := session.New(
		session.WithLogger(logger),
		session.WithPriorityOptions(priority.WithThreshold(0.5)),
	).SetCriteriaCount(3)
	require.NoError(t, err)

	// Classic inconsistent matrix: CR ≈ 0.206, accepted under a 0.5 threshold.
	for _, e := range []struct {
		r, c string
		v    float64
	}{{"c1", "c2", 3}, {"c1", "c3", 5}, {"c2", "c3", 7}} {
		s, err = s.UpdateComparison(e.r, e.c, e.v)
		require.NoError(t, err)
	}
	s, err = s.Calculate()
	require.NoError(t, err)
	assert.True(t, s.Results().Criteria.Consistency.IsConsistent)
	assert.Contains(t, buf.String(), "criteria priorities computed")
}

func TestReset_KeepsOptions(t *testing.T) {
	s, err := session.New(session.WithPriorityOptions(priority.WithThreshold(0.5))).SetCriteriaCount(2)
	require.NoError(t, err)
	s = s.SetProblem("x").Next().Reset()
	assert.Equal(t, session.StepProblem, s.Step())
	assert.Empty(t, s.Problem())
	assert.Empty(t, s.Criteria())
}
