// Package cli implements the ahp command line: compute, scale and template.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string

	// Populated by the root PersistentPreRunE.
	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the ahp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ahp",
		Short: "Analytic Hierarchy Process calculator",
		Long: `Derive priority weights and consistency ratios from pairwise comparisons,
and rank alternatives across weighted criteria.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/ahp/config.yaml)")

	cmd.AddCommand(NewComputeCommand(opts))
	cmd.AddCommand(NewScaleCommand(opts))
	cmd.AddCommand(NewTemplateCommand(opts))

	return cmd
}

// init loads the configuration and builds the logger. An explicit --format
// flag wins over output.format from config.
func (o *RootOptions) init(cmd *cobra.Command) error {
	v, err := config.New(o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeConfig, err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeConfig, err)
	}
	if !cmd.Flags().Changed("format") {
		o.Format = cfg.Output.Format
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, config.ValidFormats))
	}

	level := cfg.LogLevel()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Config = cfg
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.Logger.Debug("configuration loaded", "format", o.Format, "threshold", cfg.Analysis.Threshold)

	return nil
}

// config returns the loaded configuration, or the defaults when a
// subcommand runs without the root command.
func (o *RootOptions) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}

	return o.Config
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(config.ValidFormats, format)
}
