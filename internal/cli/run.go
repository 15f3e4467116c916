package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpelliott/specimen/internal/construct"
	"github.com/cpelliott/specimen/internal/showcase"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the showcase and print its result",
		Long: `Run the showcase computation.

Builds the anchor point, runs the addition showcase, and writes the
single result line to stdout. Output and exit code are identical on
every run:

  $ specimen run
  Result: 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(rootOpts, cmd)
		},
	}

	return cmd
}

// runShowcase is the program's entry behavior, shared by the root command
// and the run subcommand.
func runShowcase(opts *RootOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	point := construct.New(construct.GridStep, 2*construct.GridStep)
	slog.Debug("anchor point constructed", "x", point.X, "y", point.Y)

	if err := showcase.Demonstrate(cmd.OutOrStdout()); err != nil {
		return WrapExitError(ExitFailure, "showcase failed", err)
	}
	return nil
}
