// Package bids parses BIDS-style filenames into their entity components and
// derives the shorthand labels the inventory uses as row keys.
//
// Parsing is deliberately permissive: only a fixed set of entity keys is
// recognized, unrecognized key-value tokens are skipped so future BIDS
// entities never break a scan, and values are checked against a character
// class rather than any per-entity semantics. Strict conformance checking is
// the job of the upstream BIDS validator, not this package.
package bids
