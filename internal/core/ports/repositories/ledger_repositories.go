package repositories

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository applies money-movement intents to the store. Each posting
// is a single atomic store operation: the transaction append and every
// balance or settlement effect it implies complete together or not at all.
type LedgerRepository interface {
	// PostTransaction appends the transaction to the log and applies its
	// signed amount to the owning account balance. The account reference is
	// validated; apperrors.ErrNotFound is returned for a missing account and
	// no effect is applied.
	PostTransaction(ctx context.Context, txn domain.Transaction) error

	// PostReceivableReceipt settles amountReceived against the receivable and
	// posts txn (an income transaction crediting the destination account).
	// amountReceived >= outstanding zeroes the receivable and marks it
	// received; otherwise the outstanding amount is decremented. The updated
	// receivable is returned.
	PostReceivableReceipt(ctx context.Context, receivableID string, amountReceived decimal.Decimal, txn domain.Transaction) (*domain.Receivable, error)

	// PostFutureIncomeReceipt is the future-income analogue of
	// PostReceivableReceipt; receivedDate is stamped on full receipt.
	PostFutureIncomeReceipt(ctx context.Context, futureIncomeID string, amountReceived decimal.Decimal, receivedDate domain.Date, txn domain.Transaction) (*domain.FutureIncome, error)
}
