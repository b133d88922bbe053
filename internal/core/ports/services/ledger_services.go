package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/dto"
)

// LedgerSvc applies money-movement intents to the entity store.
type LedgerSvc interface {
	// RecordTransaction validates and posts a transaction against its
	// account, defaulting the date to today when not supplied.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// ReceiveReceivable settles a (partial or full) payment of a receivable
	// into the destination account. It returns the updated receivable and
	// the income transaction posted for the receipt.
	ReceiveReceivable(ctx context.Context, receivableID string, req dto.ReceiveFundsRequest) (*domain.Receivable, *domain.Transaction, error)

	// ReceiveFutureIncome settles a (partial or full) payment of a future
	// income into the destination account, stamping the received date on
	// full receipt.
	ReceiveFutureIncome(ctx context.Context, futureIncomeID string, req dto.ReceiveFundsRequest) (*domain.FutureIncome, *domain.Transaction, error)
}
