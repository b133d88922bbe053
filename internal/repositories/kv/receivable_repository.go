package kv

import (
	"context"
	"fmt"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// receivableRepository implements repositories.ReceivableRepository over the
// store. Settlement goes through the ledger repository.
type receivableRepository struct {
	store *Store
}

// NewReceivableRepository creates a new receivable repository.
func NewReceivableRepository(store *Store) repositories.ReceivableRepository {
	return &receivableRepository{store: store}
}

// FindReceivableByID retrieves a specific receivable by its identifier.
func (r *receivableRepository) FindReceivableByID(_ context.Context, receivableID string) (*domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.store.receivableIndex(receivableID)
	if idx < 0 {
		return nil, fmt.Errorf("receivable %s: %w", receivableID, apperrors.ErrNotFound)
	}
	receivable := r.store.receivables[idx]
	return &receivable, nil
}

// ListReceivables retrieves all receivables, newest-first.
func (r *receivableRepository) ListReceivables(_ context.Context) ([]domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.copyReceivables(), nil
}

// SaveReceivable persists a new receivable at the head of the list.
func (r *receivableRepository) SaveReceivable(_ context.Context, receivable domain.Receivable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.receivableIndex(receivable.ID) >= 0 {
		return fmt.Errorf("receivable %s: %w", receivable.ID, apperrors.ErrDuplicate)
	}
	r.store.receivables = append([]domain.Receivable{receivable}, r.store.receivables...)
	return nil
}
