package kv

import (
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository implementation over one
// shared store.
func NewRepositoryProvider(store *Store) *repositories.RepositoryProvider {
	return &repositories.RepositoryProvider{
		AccountRepo:      NewAccountRepository(store),
		TransactionRepo:  NewTransactionRepository(store),
		ReceivableRepo:   NewReceivableRepository(store),
		FutureIncomeRepo: NewFutureIncomeRepository(store),
		LedgerRepo:       NewLedgerRepository(store),
		SnapshotRepo:     store,
	}
}
