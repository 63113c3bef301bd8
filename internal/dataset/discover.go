package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DiscoverSubjects returns the subject identifiers (without the sub- prefix)
// found as first-level directories of the dataset root, sorted
// lexicographically. Non-matching entries are skipped. The result is an
// explicit empty slice when nothing matches; callers that cannot proceed
// without subjects must treat that as their own error condition.
func DiscoverSubjects(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dataset root: %w", err)
	}

	subjects := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, ok := strings.CutPrefix(entry.Name(), SubjectPrefix)
		if !ok || id == "" {
			continue
		}
		subjects = append(subjects, id)
	}
	sort.Strings(subjects)
	return subjects, nil
}
