// Package history persists a record of past inventory runs in a local
// SQLite database.
//
// Recording is best-effort: the inventory itself is the product, the history
// is bookkeeping, so store failures are logged by callers rather than
// failing a run that already produced its output.
package history
