// Package logging constructs the slog loggers used across bidscan.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for captured batch logs. Level and format come from the
// [logging] config section; commands may override both with flags.
package logging
