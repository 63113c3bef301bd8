package inventory

import (
	"errors"
	"log/slog"

	"bidscan/internal/bids"
	"bidscan/internal/dataset"
)

// Builder aggregates one dataset scan into a Table.
type Builder struct {
	Walker   *dataset.Walker
	Subjects []string
	Logger   *slog.Logger
}

// Result carries the built table plus scan counters for logging and the
// history record.
type Result struct {
	Table        *Table
	FilesScanned int
	FilesParsed  int
	FilesSkipped int
}

// Build walks every subject, parses every recognized file, and fills the
// table. Unparsable filenames are counted and skipped, never fatal; the
// subject column set is fixed before the walk begins.
func (b *Builder) Build() (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{Table: NewTable(b.Subjects)}
	for _, subject := range b.Subjects {
		files, err := b.Walker.FilesFor(subject)
		if err != nil {
			return nil, err
		}
		for _, relpath := range files {
			result.FilesScanned++
			record, err := bids.Parse(relpath)
			if err != nil {
				if errors.Is(err, bids.ErrUnparsable) {
					result.FilesSkipped++
					logger.Debug("skipping unparsable file", "path", relpath, "error", err)
					continue
				}
				return nil, err
			}
			result.FilesParsed++
			result.Table.MarkPresent(record.Label(), record.Datatype, subject, relpath)
		}
	}

	if result.Table.Len() == 0 {
		logger.Warn("no BIDS files found; inventory will contain headers only",
			"root", b.Walker.Root(), "subjects", len(b.Subjects))
	}
	return result, nil
}
