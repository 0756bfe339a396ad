package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/internal/cli"
	"github.com/katalvlaran/ahp/internal/problem"
	"github.com/katalvlaran/ahp/session"
)

func TestNewReport_RequiresResults(t *testing.T) {
	_, err := cli.NewReport(session.New(), 0.1, 4)
	assert.ErrorIs(t, err, cli.ErrNoResults)

	s, err := problem.Template().Apply()
	require.NoError(t, err)
	_, err = cli.NewReport(s, 0.1, 4)
	assert.ErrorIs(t, err, cli.ErrNoResults, "applied but not calculated")

	s, err = s.Calculate()
	require.NoError(t, err)
	r, err := cli.NewReport(s, 0.1, 4)
	require.NoError(t, err)
	assert.Equal(t, "Choose a supplier", r.Problem)
	require.Len(t, r.Criteria, 3)
	assert.Len(t, r.Alternatives, 2)
	assert.True(t, r.Consistent())
}
