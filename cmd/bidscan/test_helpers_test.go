package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"bidscan/internal/config"
	"bidscan/internal/testsupport"
)

// runCLI executes the command tree in-process with captured output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// withoutConfig points config discovery at a dead end so commands exercise
// their no-configuration paths deterministically.
func withoutConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigDir, filepath.Join(t.TempDir(), "missing"))
}

// writeTestConfig creates a config directory whose paths live under the
// test's temp space and returns it.
func writeTestConfig(t *testing.T, root string) (configDir, outputDir string) {
	t.Helper()

	base := t.TempDir()
	outputDir = filepath.Join(base, "inventory")
	historyPath := filepath.Join(base, "history.db")

	configDir = testsupport.WriteConfigDir(t, fmt.Sprintf(`
[paths]
bids_project_dir = %q
inventory_output_dir = %q

[inventory]
history_enabled = true
history_path = %q
`, root, outputDir, historyPath), "")
	return configDir, outputDir
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output %q does not contain %q", haystack, needle)
	}
}
