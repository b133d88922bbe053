package repositories

import "context"

// SnapshotRepository persists the entity store to the key-value byte store
// and restores it. The four collections are stored under independent keys;
// there is no cross-key transactional guarantee.
type SnapshotRepository interface {
	// SaveSnapshot serializes every collection and writes it to its key.
	SaveSnapshot(ctx context.Context) error

	// LoadSnapshot replaces the in-memory collections with the persisted
	// state; a missing key falls back to the built-in seed data for that
	// collection.
	LoadSnapshot(ctx context.Context) error

	// ResetSnapshot restores the built-in seed data and persists it.
	ResetSnapshot(ctx context.Context) error
}
