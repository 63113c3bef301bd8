// Package dataset traverses a BIDS dataset root: it discovers subject
// directories, enumerates the recognized data files under each subject, and
// computes whole-dataset summaries.
//
// Traversal is read-only and explicitly sorted so downstream output is
// deterministic regardless of filesystem iteration order. A missing subject
// directory is a per-subject condition (warn, zero files), never a scan
// abort; a missing dataset root is fatal and checked once up front.
package dataset
