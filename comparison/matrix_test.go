package comparison_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_ThreeCriteria checks the initial layout: diagonal 1, rest unset.
func TestBuild_ThreeCriteria(t *testing.T) {
	m := comparison.Build(entity.Generate(entity.Criterion, 3))
	assert.Equal(t, comparison.Matrix{
		"c1": {"c1": 1, "c2": 0, "c3": 0},
		"c2": {"c1": 0, "c2": 1, "c3": 0},
		"c3": {"c1": 0, "c2": 0, "c3": 1},
	}, m)
}

// TestBuild_Single covers the degenerate 1×1 case.
func TestBuild_Single(t *testing.T) {
	m := comparison.Build([]entity.Entity{{ID: "a", Name: "A"}})
	assert.Equal(t, comparison.Matrix{"a": {"a": 1}}, m)
}

// TestSet_Reciprocal verifies one edit writes both cells and leaves the source alone.
func TestSet_Reciprocal(t *testing.T) {
	m := comparison.Build(entity.Generate(entity.Criterion, 3))
	out, err := m.Set("c1", "c2", 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, out["c1"]["c2"])
	assert.Equal(t, 0.2, out["c2"]["c1"]) // exactly 1/5
	assert.Equal(t, 0.0, m["c1"]["c2"], "source must not change")

	// Writing the reciprocal side keeps the pair consistent.
	out, err = out.Set("c2", "c1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out["c2"]["c1"])
	assert.Equal(t, 1.0/3, out["c1"]["c2"])

	// Clearing resets both cells.
	out, err = out.Set("c1", "c2", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out["c1"]["c2"])
	assert.Equal(t, 0.0, out["c2"]["c1"])
}

func TestSet_Errors(t *testing.T) {
	m := comparison.Build(entity.Generate(entity.Criterion, 2))

	_, err := m.Set("c1", "c1", 3)
	assert.ErrorIs(t, err, comparison.ErrDiagonalEdit)
	_, err = m.Set("c1", "c2", -1)
	assert.ErrorIs(t, err, comparison.ErrInvalidIntensity)
	_, err = m.Set("c1", "c2", math.NaN())
	assert.ErrorIs(t, err, comparison.ErrInvalidIntensity)
	_, err = m.Set("c1", "c9", 3)
	assert.ErrorIs(t, err, comparison.ErrUnknownEntity)
}

func TestProgressAndComplete(t *testing.T) {
	es := entity.Generate(entity.Criterion, 3)
	m := comparison.Build(es)

	done, total := comparison.Progress(m, es)
	assert.Equal(t, 0, done)
	assert.Equal(t, 3, total)
	assert.False(t, comparison.IsComplete(m, es))

	var err error
	for _, p := range [][2]string{{"c1", "c2"}, {"c1", "c3"}, {"c2", "c3"}} {
		m, err = m.Set(p[0], p[1], 2)
		require.NoError(t, err)
	}
	done, _ = comparison.Progress(m, es)
	assert.Equal(t, 3, done)
	assert.True(t, comparison.IsComplete(m, es))

	single := []entity.Entity{{ID: "x"}}
	assert.True(t, comparison.IsComplete(comparison.Build(single), single))
}

func TestValidate(t *testing.T) {
	es := entity.Generate(entity.Criterion, 2)
	m := comparison.Build(es)
	require.NoError(t, comparison.Validate(m, es))

	other := entity.Generate(entity.Alternative, 2)
	assert.ErrorIs(t, comparison.Validate(m, other), comparison.ErrShapeMismatch)
	assert.ErrorIs(t, comparison.Validate(m, es[:1]), comparison.ErrShapeMismatch)

	extra := m.Clone()
	extra["c1"]["zz"] = 1
	assert.ErrorIs(t, comparison.Validate(extra, es), comparison.ErrShapeMismatch)

	dup := []entity.Entity{es[0], es[0]}
	err := comparison.Validate(m, dup)
	assert.ErrorIs(t, err, comparison.ErrShapeMismatch)
	assert.ErrorIs(t, err, entity.ErrDuplicateID)
}

func TestDenseRoundTrip(t *testing.T) {
	es := entity.Generate(entity.Criterion, 2)
	m, err := comparison.Build(es).Set("c1", "c2", 4)
	require.NoError(t, err)

	d, err := comparison.Dense(m, es)
	require.NoError(t, err)
	assert.Equal(t, "[1, 4]\n[0.25, 1]\n", d.String())

	back, err := comparison.FromDense(d, es)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	bad := m.Clone()
	bad["c1"]["c2"] = math.Inf(1)
	_, err = comparison.Dense(bad, es)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = comparison.FromDense(d, entity.Generate(entity.Criterion, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCheckReciprocal(t *testing.T) {
	es := entity.Generate(entity.Criterion, 3)
	m, err := comparison.Build(es).Set("c1", "c3", 7)
	require.NoError(t, err)
	require.NoError(t, comparison.CheckReciprocal(m, es, 1e-12))

	broken := m.Clone()
	broken["c3"]["c1"] = 0.5
	assert.ErrorIs(t, comparison.CheckReciprocal(broken, es, 1e-9), comparison.ErrNotReciprocal)

	half := m.Clone()
	half["c2"]["c3"] = 2 // reciprocal cell still unset
	assert.ErrorIs(t, comparison.CheckReciprocal(half, es, 1e-9), comparison.ErrNotReciprocal)

	diag := m.Clone()
	diag["c2"]["c2"] = 2
	assert.ErrorIs(t, comparison.CheckReciprocal(diag, es, 1e-9), comparison.ErrNotReciprocal)
}
