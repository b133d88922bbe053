package kv

import (
	"context"
	"fmt"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// futureIncomeRepository implements repositories.FutureIncomeRepository over
// the store. Settlement goes through the ledger repository.
type futureIncomeRepository struct {
	store *Store
}

// NewFutureIncomeRepository creates a new future income repository.
func NewFutureIncomeRepository(store *Store) repositories.FutureIncomeRepository {
	return &futureIncomeRepository{store: store}
}

// FindFutureIncomeByID retrieves a specific future income by its identifier.
func (r *futureIncomeRepository) FindFutureIncomeByID(_ context.Context, futureIncomeID string) (*domain.FutureIncome, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.store.futureIncomeIndex(futureIncomeID)
	if idx < 0 {
		return nil, fmt.Errorf("future income %s: %w", futureIncomeID, apperrors.ErrNotFound)
	}
	income := r.store.futureIncomes[idx]
	return &income, nil
}

// ListFutureIncomes retrieves all future incomes, newest-first.
func (r *futureIncomeRepository) ListFutureIncomes(_ context.Context) ([]domain.FutureIncome, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.copyFutureIncomes(), nil
}

// SaveFutureIncome persists a new future income at the head of the list.
func (r *futureIncomeRepository) SaveFutureIncome(_ context.Context, income domain.FutureIncome) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.futureIncomeIndex(income.ID) >= 0 {
		return fmt.Errorf("future income %s: %w", income.ID, apperrors.ErrDuplicate)
	}
	r.store.futureIncomes = append([]domain.FutureIncome{income}, r.store.futureIncomes...)
	return nil
}
