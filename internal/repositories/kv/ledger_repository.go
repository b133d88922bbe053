package kv

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// ledgerRepository applies money-movement postings under one store lock, so
// the transaction append and every balance or settlement effect it implies
// are atomic with respect to all readers.
type ledgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a new ledger repository.
func NewLedgerRepository(store *Store) repositories.LedgerRepository {
	return &ledgerRepository{store: store}
}

// PostTransaction appends the transaction to the log and applies its signed
// amount to the owning account balance.
func (r *ledgerRepository) PostTransaction(_ context.Context, txn domain.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.store.accountIndex(txn.AccountID)
	if idx < 0 {
		return fmt.Errorf("account %s: %w", txn.AccountID, apperrors.ErrNotFound)
	}

	r.store.accounts[idx].Balance = r.store.accounts[idx].Balance.Add(txn.SignedAmount())
	r.store.transactions = append([]domain.Transaction{txn}, r.store.transactions...)
	return nil
}

// PostReceivableReceipt settles amountReceived against the receivable and
// credits the destination account with the transaction amount. The record is
// retained on full receipt, zeroed and marked received.
func (r *ledgerRepository) PostReceivableReceipt(_ context.Context, receivableID string, amountReceived decimal.Decimal, txn domain.Transaction) (*domain.Receivable, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rIdx := r.store.receivableIndex(receivableID)
	if rIdx < 0 {
		return nil, fmt.Errorf("receivable %s: %w", receivableID, apperrors.ErrNotFound)
	}
	if r.store.receivables[rIdx].IsReceived() {
		return nil, fmt.Errorf("%w: receivable %s is already received", apperrors.ErrValidation, receivableID)
	}

	aIdx := r.store.accountIndex(txn.AccountID)
	if aIdx < 0 {
		return nil, fmt.Errorf("account %s: %w", txn.AccountID, apperrors.ErrNotFound)
	}

	receivable := &r.store.receivables[rIdx]
	if amountReceived.GreaterThanOrEqual(receivable.Amount) {
		receivable.Amount = decimal.Zero
		receivable.Status = domain.ReceivableReceived
	} else {
		receivable.Amount = receivable.Amount.Sub(amountReceived)
	}

	r.store.accounts[aIdx].Balance = r.store.accounts[aIdx].Balance.Add(txn.SignedAmount())
	r.store.transactions = append([]domain.Transaction{txn}, r.store.transactions...)

	updated := *receivable
	return &updated, nil
}

// PostFutureIncomeReceipt is the future-income analogue of
// PostReceivableReceipt; receivedDate is stamped on full receipt.
func (r *ledgerRepository) PostFutureIncomeReceipt(_ context.Context, futureIncomeID string, amountReceived decimal.Decimal, receivedDate domain.Date, txn domain.Transaction) (*domain.FutureIncome, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	fIdx := r.store.futureIncomeIndex(futureIncomeID)
	if fIdx < 0 {
		return nil, fmt.Errorf("future income %s: %w", futureIncomeID, apperrors.ErrNotFound)
	}
	if r.store.futureIncomes[fIdx].IsReceived() {
		return nil, fmt.Errorf("%w: future income %s is already received", apperrors.ErrValidation, futureIncomeID)
	}

	aIdx := r.store.accountIndex(txn.AccountID)
	if aIdx < 0 {
		return nil, fmt.Errorf("account %s: %w", txn.AccountID, apperrors.ErrNotFound)
	}

	income := &r.store.futureIncomes[fIdx]
	if amountReceived.GreaterThanOrEqual(income.Amount) {
		income.Amount = decimal.Zero
		income.Status = domain.FutureIncomeReceived
		stamped := receivedDate
		income.ReceivedDate = &stamped
	} else {
		income.Amount = income.Amount.Sub(amountReceived)
	}

	r.store.accounts[aIdx].Balance = r.store.accounts[aIdx].Balance.Add(txn.SignedAmount())
	r.store.transactions = append([]domain.Transaction{txn}, r.store.transactions...)

	updated := *income
	return &updated, nil
}
