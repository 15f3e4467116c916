package harness

import (
	"bytes"

	"github.com/cpelliott/specimen/internal/cli"
)

// Result captures one in-process CLI execution.
type Result struct {
	Stdout   string // captured stdout, byte-exact
	Stderr   string // captured stderr (diagnostics, usage errors)
	ExitCode int    // exit code after error mapping
}

// Run executes a scenario against a fresh root command.
//
// The command runs in-process with stdout and stderr captured. The error
// returned by cobra is mapped through the same exit-code path main uses,
// so ExitCode matches what a real process invocation would report.
func Run(scenario *Scenario) *Result {
	var out, errOut bytes.Buffer

	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(scenario.Args)

	err := cmd.Execute()

	return &Result{
		Stdout:   out.String(),
		Stderr:   errOut.String(),
		ExitCode: cli.GetExitCode(err),
	}
}
