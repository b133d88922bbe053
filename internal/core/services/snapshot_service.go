package services

import (
	"context"

	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// snapshotService exposes explicit persistence commands over the snapshot
// repository.
type snapshotService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepository
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(repo portsrepo.SnapshotRepository) *snapshotService {
	return &snapshotService{snapshotRepo: repo}
}

// Save flushes the entire entity store to the backing store.
func (s *snapshotService) Save(ctx context.Context) error {
	if err := s.snapshotRepo.SaveSnapshot(ctx); err != nil {
		s.LogError(ctx, err, "Failed to save snapshot")
		return err
	}
	s.LogInfo(ctx, "Snapshot saved")
	return nil
}

// Reset discards all persisted state and reloads the seed data.
func (s *snapshotService) Reset(ctx context.Context) error {
	if err := s.snapshotRepo.ResetSnapshot(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset snapshot")
		return err
	}
	s.LogInfo(ctx, "Snapshot reset to seed data")
	return nil
}
