package repositories

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log.
// Transactions are append-only; writes go through LedgerRepository postings.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the full transaction log, newest-first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionRepository is the read-only surface of the transaction log.
type TransactionRepository interface {
	TransactionReader
}
