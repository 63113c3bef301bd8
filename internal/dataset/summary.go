package dataset

import (
	"errors"
	"log/slog"
	"sort"

	"bidscan/internal/bids"
)

// Summary describes the high-level contents of a dataset: which subjects,
// sessions, datatypes, modalities (suffixes), and tasks occur, plus file
// counts per datatype. Lists are unique and sorted.
type Summary struct {
	Root         string
	Subjects     []string
	Sessions     []string
	Datatypes    []string
	Suffixes     []string
	Tasks        []string
	FilesScanned int
	FilesSkipped int
	CountByType  map[string]int
}

// Summarize walks every discovered subject and aggregates the entity values
// seen across all parsable files. Unparsable files are counted and skipped.
func Summarize(root string, logger *slog.Logger) (*Summary, error) {
	walker, err := NewWalker(root, logger)
	if err != nil {
		return nil, err
	}
	subjects, err := DiscoverSubjects(root)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Root:        root,
		Subjects:    subjects,
		CountByType: make(map[string]int),
	}
	sessions := make(map[string]struct{})
	datatypes := make(map[string]struct{})
	suffixes := make(map[string]struct{})
	tasks := make(map[string]struct{})

	for _, subject := range subjects {
		files, err := walker.FilesFor(subject)
		if err != nil {
			return nil, err
		}
		for _, relpath := range files {
			summary.FilesScanned++
			record, err := bids.Parse(relpath)
			if err != nil {
				if errors.Is(err, bids.ErrUnparsable) {
					summary.FilesSkipped++
					continue
				}
				return nil, err
			}
			if record.Session != "" {
				sessions[record.Session] = struct{}{}
			}
			if record.Task != "" {
				tasks[record.Task] = struct{}{}
			}
			datatypes[record.Datatype] = struct{}{}
			suffixes[record.Suffix] = struct{}{}
			summary.CountByType[record.Datatype]++
		}
	}

	summary.Sessions = sortedKeys(sessions)
	summary.Datatypes = sortedKeys(datatypes)
	summary.Suffixes = sortedKeys(suffixes)
	summary.Tasks = sortedKeys(tasks)
	return summary, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
