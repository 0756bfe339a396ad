package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/problem"
	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/session"
)

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	File      string
	Threshold float64
	Strict    bool
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{}

	cmd := &cobra.Command{
		Use:   "compute -f <problem.yaml>",
		Short: "Compute priorities and consistency for a problem file",
		Long: `Load a problem file, derive the criteria weights and consistency ratio,
and when alternatives are defined rank them by global score.

Criteria with incomplete alternative comparisons fall back to uniform
scores and the ranking is marked provisional.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "problem file (YAML)")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "consistency ratio threshold (0 uses config)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit 1 when any matrix is inconsistent")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCompute(rootOpts *RootOptions, opts *ComputeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	cfg := rootOpts.config()
	logger := rootOpts.logger()

	threshold := cfg.Analysis.Threshold
	if opts.Threshold != 0 {
		if !(opts.Threshold > 0) || math.IsInf(opts.Threshold, 0) {
			return formatter.fail(ExitCommandError, ErrCodeGeneric,
				fmt.Errorf("invalid threshold %v: must be a positive finite number", opts.Threshold))
		}
		threshold = opts.Threshold
	}

	f, err := problem.Load(opts.File)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidProblem, err)
	}
	formatter.VerboseLog("loaded %s: %d criteria, %d alternatives", opts.File, len(f.Criteria), len(f.Alternatives))

	popts := cfg.PriorityOptions()
	if opts.Threshold != 0 {
		popts = append(popts, priority.WithThreshold(threshold))
	}
	state, err := f.Apply(session.WithLogger(logger), session.WithPriorityOptions(popts...))
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidProblem, err)
	}
	if err = diagnose(state, logger); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidProblem, err)
	}

	state, err = state.Calculate()
	switch {
	case errors.Is(err, session.ErrIncompleteMatrix):
		return formatter.fail(ExitFailure, ErrCodeIncomplete, err)
	case err != nil:
		return formatter.fail(ExitFailure, ErrCodeGeneric, err)
	}
	state = state.Next()

	report, err := NewReport(state, threshold, cfg.Output.Precision)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeGeneric, err)
	}
	if err = formatter.Success(report); err != nil {
		return WrapExitError(ExitCommandError, ErrCodeGeneric, err)
	}
	if opts.Strict && !report.Consistent() {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: inconsistent judgements (threshold %g)", ErrCodeInconsistent, threshold))
	}

	return nil
}
