package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfigDir creates a config directory containing base.toml (and
// local.toml when non-empty) and returns its path.
func WriteConfigDir(t testing.TB, base, local string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "base.toml"), []byte(base), 0o644); err != nil {
		t.Fatalf("write base.toml: %v", err)
	}
	if local != "" {
		if err := os.WriteFile(filepath.Join(dir, "local.toml"), []byte(local), 0o644); err != nil {
			t.Fatalf("write local.toml: %v", err)
		}
	}
	return dir
}
