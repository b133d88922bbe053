package services

import "context"

// SnapshotSvc controls persistence of the entity store.
type SnapshotSvc interface {
	// Save flushes the entire entity store to the backing store.
	Save(ctx context.Context) error

	// Reset discards all persisted state and reloads the seed data.
	Reset(ctx context.Context) error
}
