package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/dto"
)

// TransactionSvcFacade defines read operations over the transaction log.
type TransactionSvcFacade interface {
	// GetTransactionByID retrieves a specific transaction by its identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the log newest-first, optionally filtered by
	// exact date or by "YYYY-MM" month.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}
