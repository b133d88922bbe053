package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
	"github.com/finbook-dev/finbook/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository) *transactionService {
	return &transactionService{transactionRepo: repo}
}

// GetTransactionByID retrieves a specific transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction")
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves the log newest-first, optionally narrowed to an
// exact "YYYY-MM-DD" date or a "YYYY-MM" month.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	var (
		byDate  *domain.Date
		byMonth string
	)
	if params.Date != "" {
		d, err := domain.ParseDate(params.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		byDate = &d
	}
	if params.Month != "" {
		if _, err := time.Parse("2006-01", params.Month); err != nil {
			return nil, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, params.Month)
		}
		byMonth = params.Month
	}

	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if byDate != nil && t.Date.String() != byDate.String() {
			continue
		}
		if byMonth != "" && t.Date.MonthKey() != byMonth {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}
