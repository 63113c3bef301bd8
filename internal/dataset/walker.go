package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"bidscan/internal/bids"
)

// SubjectPrefix is the directory naming convention for subject directories
// at the dataset root.
const SubjectPrefix = "sub-"

// Walker enumerates recognized data files per subject under one dataset
// root. The root is verified once at construction.
type Walker struct {
	root   string
	logger *slog.Logger
}

// NewWalker verifies the dataset root and returns a walker over it.
func NewWalker(root string, logger *slog.Logger) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataset root not found: %s", root)
		}
		return nil, fmt.Errorf("stat dataset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset root is not a directory: %s", root)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{root: root, logger: logger}, nil
}

// Root returns the dataset root the walker was constructed with.
func (w *Walker) Root() string {
	return w.root
}

// FilesFor returns the recognized data files under the subject's directory,
// as slash-separated paths relative to the dataset root, sorted. A missing
// subject directory yields zero files and a warning, not an error, so one
// absent subject cannot abort a whole scan.
func (w *Walker) FilesFor(subject string) ([]string, error) {
	subjectDir := filepath.Join(w.root, SubjectPrefix+subject)
	if info, err := os.Stat(subjectDir); err != nil || !info.IsDir() {
		w.logger.Warn("subject directory missing", "subject", SubjectPrefix+subject, "dir", subjectDir)
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(subjectDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if _, ext := bids.SplitExtension(entry.Name()); ext == "" {
			return nil
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk subject %s: %w", subject, err)
	}

	// WalkDir already visits entries in lexical order; the explicit sort
	// pins the output contract.
	sort.Strings(files)
	return files, nil
}
