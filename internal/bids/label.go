package bids

import "strings"

// Label derives the shorthand row key for a file. The field order is fixed
// (task, acquisition, direction, run, session, then the bare suffix) so two
// files describing the same logical acquisition produce the same label no
// matter how their filename tokens were ordered. The subject never
// participates, which is what lets the inventory align rows across subjects.
func (f File) Label() string {
	parts := make([]string, 0, 6)
	if f.Task != "" {
		parts = append(parts, "task-"+f.Task)
	}
	if f.Acquisition != "" {
		parts = append(parts, "acq-"+f.Acquisition)
	}
	if f.Direction != "" {
		parts = append(parts, "dir-"+f.Direction)
	}
	if f.Run != "" {
		parts = append(parts, "run-"+f.Run)
	}
	if f.Session != "" {
		parts = append(parts, "ses-"+f.Session)
	}
	parts = append(parts, f.Suffix)
	return strings.Join(parts, "_")
}
