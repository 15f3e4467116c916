package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpelliott/specimen/internal/construct"
)

// ColorEntry describes one enumerator in the inspect output.
type ColorEntry struct {
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

// ScalarEntry describes one variant kind with a sample value in its
// wire encoding.
type ScalarEntry struct {
	Kind   string          `json:"kind"`
	Sample json.RawMessage `json:"sample"`
}

// Inventory is the inspect command's payload: every construct the
// specimen exercises, in a stable order.
type Inventory struct {
	Point   construct.Point `json:"point"`
	Colors  []ColorEntry    `json:"colors"`
	Scalars []ScalarEntry   `json:"scalars"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the construct inventory",
		Long: `Print the specimen's construct inventory: the anchor point, the
color enumerators with their ordinals, and one sample of each scalar
variant in its wire encoding.

Use --format json for the machine-readable envelope.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, cmd *cobra.Command) error {
	inv, err := buildInventory()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build inventory", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		if err := formatter.Success(inv); err != nil {
			return WrapExitError(ExitFailure, "failed to encode inventory", err)
		}
		return nil
	}
	if err := formatter.Success(renderInventory(inv)); err != nil {
		return WrapExitError(ExitFailure, "failed to write inventory", err)
	}
	return nil
}

// buildInventory assembles the inventory from the construct package.
// Scalar samples use the values the fixture family has always used:
// int 3, float 2.5, char 'c'.
func buildInventory() (*Inventory, error) {
	colors := make([]ColorEntry, 0, 3)
	for c := construct.Red; c.Valid(); c++ {
		colors = append(colors, ColorEntry{Name: c.String(), Ordinal: int(c)})
	}

	samples := []construct.Scalar{
		construct.NewInt(3),
		construct.NewFloat(2.5),
		construct.NewChar('c'),
	}
	scalars := make([]ScalarEntry, 0, len(samples))
	for _, s := range samples {
		data, err := construct.MarshalScalar(s)
		if err != nil {
			return nil, fmt.Errorf("marshal %s sample: %w", s.Kind(), err)
		}
		scalars = append(scalars, ScalarEntry{Kind: s.Kind().String(), Sample: data})
	}

	return &Inventory{
		Point:   construct.New(construct.GridStep, 2*construct.GridStep),
		Colors:  colors,
		Scalars: scalars,
	}, nil
}

// renderInventory produces the human-readable text form.
func renderInventory(inv *Inventory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "point: %s\n", inv.Point)

	parts := make([]string, 0, len(inv.Colors))
	for _, c := range inv.Colors {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Name, c.Ordinal))
	}
	fmt.Fprintf(&b, "colors: %s\n", strings.Join(parts, " "))

	for _, s := range inv.Scalars {
		fmt.Fprintf(&b, "scalar %s: %s\n", s.Kind, s.Sample)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
