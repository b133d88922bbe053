package kv

import (
	"context"
	"fmt"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// transactionRepository implements the read-only transaction log surface.
// Writes go through the ledger repository.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(store *Store) repositories.TransactionRepository {
	return &transactionRepository{store: store}
}

// FindTransactionByID retrieves a specific transaction by its identifier.
func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].ID == transactionID {
			txn := r.store.transactions[i]
			return &txn, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

// ListTransactions retrieves the full transaction log, newest-first.
func (r *transactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.copyTransactions(), nil
}
