package main

import (
	"os"
	"path/filepath"
	"testing"

	"bidscan/internal/testsupport"
)

func TestConfigValidateAndShow(t *testing.T) {
	configDir := testsupport.WriteConfigDir(t, `
[paths]
bids_project_dir = "/data/bids"

[slurm]
partition = "compute"
`, `
[slurm]
email = "user@example.com"
`)

	out, err := runCLI(t, "config", "validate", "--config-dir", configDir)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	out, err = runCLI(t, "config", "show", "--config-dir", configDir)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "local.toml applied")
	requireContains(t, out, "/data/bids")
	requireContains(t, out, "user@example.com")
}

func TestConfigShowWithoutLocalOverride(t *testing.T) {
	configDir := testsupport.WriteConfigDir(t, "[paths]\n", "")

	out, err := runCLI(t, "config", "show", "--config-dir", configDir)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Local override: none")
}

func TestConfigValidateReportsBadConfig(t *testing.T) {
	configDir := testsupport.WriteConfigDir(t, `
[inventory]
cell_style = "emoji"
`, "")

	_, err := runCLI(t, "config", "validate", "--config-dir", configDir)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "inventory.cell_style")
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config")

	out, err := runCLI(t, "config", "init", "--dir", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(filepath.Join(target, "base.toml")); err != nil {
		t.Fatalf("expected base.toml: %v", err)
	}

	// The generated sample is loadable.
	if _, err := runCLI(t, "config", "validate", "--config-dir", target); err != nil {
		t.Fatalf("validate generated sample: %v", err)
	}
}
