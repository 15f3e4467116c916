package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "s.yaml", `
name: sample
description: sample scenario
args: [run, --verbose]
want_exit: 0
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, []string{"run", "--verbose"}, s.Args)
	assert.Equal(t, 0, s.WantExit)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "s.yaml", "description: no name\n")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "s.yaml", "name: x\nwants_exit: 0\n")
	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenarios_DuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a.yaml", "name: dup\n")
	writeScenario(t, dir, "b.yaml", "name: dup\n")

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")
}

func TestLoadScenarios_SortedByFileName(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b.yaml", "name: second\n")
	writeScenario(t, dir, "a.yaml", "name: first\n")

	scenarios, err := LoadScenarios(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "first", scenarios[0].Name)
	assert.Equal(t, "second", scenarios[1].Name)
}
