package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/problem"
)

// NewTemplateCommand creates the template command. It always writes YAML,
// ignoring --format, so the output can be redirected into a problem file.
func NewTemplateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "template",
		Short:         "Print an example problem file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := problem.Template().Encode(cmd.OutOrStdout()); err != nil {
				return WrapExitError(ExitCommandError, ErrCodeGeneric, err)
			}
			rootOpts.logger().Debug("template written")

			return nil
		},
	}
}
