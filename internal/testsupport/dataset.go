// Package testsupport builds throwaway BIDS datasets and config directories
// for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDataset creates a dataset root under a fresh temp directory and
// populates it with the given files (slash-separated paths relative to the
// root). Parent directories are created as needed; file contents are a
// single placeholder byte.
func WriteDataset(t testing.TB, relpaths ...string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "bids")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir dataset root: %v", err)
	}
	for _, rel := range relpaths {
		WriteDatasetFile(t, root, rel)
	}
	return root
}

// WriteDatasetFile adds one file to an existing dataset root.
func WriteDatasetFile(t testing.TB, root, rel string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{0x42}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MkSubjectDir creates an empty subject directory, for datasets where a
// subject exists but carries no files yet.
func MkSubjectDir(t testing.TB, root, name string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
}
