// Package inventory builds the subject-by-label presence matrix for a BIDS
// dataset and serializes it as a TSV.
//
// Rows are keyed by shorthand label in first-seen order; the subject column
// set is fixed before aggregation starts and never grows mid-scan. Cells are
// a tagged present/absent value so a missing file is always distinguishable
// from a never-populated field. Output writes are serialized through a
// sibling lock file so concurrent runs sharing an output directory cannot
// interleave.
package inventory
