package contracts

import "context"

// BatchStore persists one formula's date-ordered batch entries.
//
// Implementations must treat the persisted set as append-only history:
// a date, once present, is never recomputed or overwritten. Save is
// invoked with the full merged set by the single writer (the merge step).
type BatchStore interface {
	// Load returns all persisted entries sorted by date. A store that
	// does not exist yet yields an empty slice, not an error. An
	// unreadable or corrupt store is an error; callers must abort
	// rather than overwrite history with a partial set.
	Load(ctx context.Context) ([]BatchEntry, error)

	// Save persists the full entry set.
	Save(ctx context.Context, entries []BatchEntry) error
}
