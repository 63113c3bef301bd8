// Package config locates, loads, normalizes, and validates bidscan
// configuration data.
//
// Configuration lives in a directory holding base.toml plus an optional
// local.toml override. The directory is resolved once per invocation: the
// BIDSCAN_CONFIG_DIR environment variable wins, then an upward walk from the
// working directory, then a config directory next to the executable. Local
// values override base values table-by-table; scalars replace outright.
// Legacy flat keys (bids_project_dir at the top level) are folded into the
// nested [paths] section during normalization so the rest of the system never
// branches on schema version.
//
// Always obtain settings through this package so downstream code receives
// expanded absolute paths and clear validation errors.
package config
