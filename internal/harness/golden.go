package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// RunWithGolden executes a scenario and compares its stdout against a
// golden file. The golden file is stored in testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Exit-code mismatches fail before the golden comparison: a scenario
// whose exit code drifted is broken regardless of what it printed.
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result := Run(scenario)
	require.Equal(t, scenario.WantExit, result.ExitCode,
		"scenario %s: exit code mismatch (stderr: %s)", scenario.Name, result.Stderr)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(result.Stdout))
}
