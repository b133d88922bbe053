package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
	"github.com/finbook-dev/finbook/internal/dto"
)

// Categories and fallback descriptions stamped on directly recorded entries.
const (
	categoryDirectIncome  = "Direct Income"
	categoryDirectExpense = "Direct Expense"
	defaultIncomeNote     = "Credit"
	defaultExpenseNote    = "Debit"
)

type ledgerService struct {
	BaseService
	ledgerRepo       portsrepo.LedgerRepository
	receivableRepo   portsrepo.ReceivableReader
	futureIncomeRepo portsrepo.FutureIncomeReader
	today            func() domain.Date
}

// LedgerServiceOption configures a ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the source of "today" for posting dates.
func WithLedgerClock(today func() domain.Date) LedgerServiceOption {
	return func(s *ledgerService) {
		s.today = today
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, receivableRepo portsrepo.ReceivableReader, futureIncomeRepo portsrepo.FutureIncomeReader, opts ...LedgerServiceOption) *ledgerService {
	s := &ledgerService{
		ledgerRepo:       ledgerRepo,
		receivableRepo:   receivableRepo,
		futureIncomeRepo: futureIncomeRepo,
		today:            domain.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordTransaction validates and posts a direct income or expense entry.
// The date defaults to today when the request omits it.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	date := s.today()
	if req.Date != nil {
		date = *req.Date
	}

	category := categoryDirectIncome
	description := defaultIncomeNote
	if req.Type == domain.Expense {
		category = categoryDirectExpense
		description = defaultExpenseNote
	}
	if req.Note != "" {
		description = req.Note
	}

	now := time.Now()
	txn := domain.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Amount:      req.Amount,
		Category:    category,
		Description: description,
		Type:        req.Type,
		AccountID:   req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.PostTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to post transaction", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// ReceiveReceivable settles a payment against a receivable. The destination
// account is credited with the full requested amount even when it exceeds
// the outstanding balance; the receivable itself never goes negative.
func (s *ledgerService) ReceiveReceivable(ctx context.Context, receivableID string, req dto.ReceiveFundsRequest) (*domain.Receivable, *domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: receipt amount must be positive", apperrors.ErrValidation)
	}

	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, nil, err
	}
	if receivable.IsReceived() {
		return nil, nil, fmt.Errorf("%w: receivable %s is already received", apperrors.ErrValidation, receivableID)
	}

	txn := s.receiptTransaction(req, receiptDescription(fmt.Sprintf("Received from %s", receivable.From), receivable.Note))
	updated, err := s.ledgerRepo.PostReceivableReceipt(ctx, receivableID, req.Amount, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to post receivable receipt", slog.String("receivable_id", receivableID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Receivable payment received",
		slog.String("receivable_id", receivableID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)))
	return updated, &txn, nil
}

// ReceiveFutureIncome settles a payment against a future income. The
// received date is stamped when the receipt completes the full amount.
func (s *ledgerService) ReceiveFutureIncome(ctx context.Context, futureIncomeID string, req dto.ReceiveFundsRequest) (*domain.FutureIncome, *domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: receipt amount must be positive", apperrors.ErrValidation)
	}

	income, err := s.futureIncomeRepo.FindFutureIncomeByID(ctx, futureIncomeID)
	if err != nil {
		return nil, nil, err
	}
	if income.IsReceived() {
		return nil, nil, fmt.Errorf("%w: future income %s is already received", apperrors.ErrValidation, futureIncomeID)
	}

	txn := s.receiptTransaction(req, receiptDescription(fmt.Sprintf("Received Future Income (%s)", income.Title), income.Note))
	updated, err := s.ledgerRepo.PostFutureIncomeReceipt(ctx, futureIncomeID, req.Amount, s.today(), txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to post future income receipt", slog.String("future_income_id", futureIncomeID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Future income payment received",
		slog.String("future_income_id", futureIncomeID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)))
	return updated, &txn, nil
}

// receiptDescription appends the record's note to the base description when
// one is present.
func receiptDescription(base, note string) string {
	if note == "" {
		return base
	}
	return base + ": " + note
}

// receiptTransaction builds the income entry credited for a receipt.
func (s *ledgerService) receiptTransaction(req dto.ReceiveFundsRequest, description string) domain.Transaction {
	now := time.Now()
	return domain.Transaction{
		ID:          uuid.NewString(),
		Date:        s.today(),
		Amount:      req.Amount,
		Category:    categoryDirectIncome,
		Description: description,
		Type:        domain.Income,
		AccountID:   req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}
