package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/comparison"
)

// ScaleRow is one slider position of the comparison input.
type ScaleRow struct {
	Slider  int     `json:"slider"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Meaning string  `json:"meaning"`
}

// ScaleReference is the payload of the scale command.
type ScaleReference struct {
	Scale  []ScaleLabel `json:"scale"`
	Slider []ScaleRow   `json:"slider"`
}

// ScaleLabel is one row of the reference table.
type ScaleLabel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Print the Saaty scale and slider mapping",
		Long: `Print the 1-9 Saaty intensity scale and the slider positions -8..8 used to
enter a judgement of A against B.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return formatter.Success(NewScaleReference())
		},
	}
}

// NewScaleReference builds the scale table and all 17 slider positions.
func NewScaleReference() *ScaleReference {
	ref := &ScaleReference{}
	for _, e := range comparison.Scale {
		ref.Scale = append(ref.Scale, ScaleLabel{Value: e.Value, Label: e.Label})
	}
	for s := comparison.SliderMin; s <= comparison.SliderMax; s++ {
		v, _ := comparison.FromSlider(s)
		ref.Slider = append(ref.Slider, ScaleRow{
			Slider:  s,
			Value:   v,
			Display: comparison.Format(v),
			Meaning: comparison.Describe(v, "A", "B"),
		})
	}

	return ref
}

// String renders both tables.
func (r *ScaleReference) String() string {
	var b strings.Builder

	b.WriteString("Saaty scale\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  VALUE\tMEANING")
	for _, e := range r.Scale {
		fmt.Fprintf(tw, "  %s\t%s\n", e.Value, e.Label)
	}
	_ = tw.Flush()

	b.WriteString("\nSlider (A compared with B)\n")
	tw = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  SLIDER\tVALUE\tMEANING")
	for _, row := range r.Slider {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", row.Slider, row.Display, row.Meaning)
	}
	_ = tw.Flush()

	return b.String()
}
