package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/dto"
)

// FutureIncomeSvcFacade manages the future-income collection. Receipt
// settlement lives on LedgerSvc.
type FutureIncomeSvcFacade interface {
	// AddFutureIncome persists a new future income.
	AddFutureIncome(ctx context.Context, req dto.CreateFutureIncomeRequest) (*domain.FutureIncome, error)

	// GetFutureIncomeByID retrieves a specific future income by its identifier.
	GetFutureIncomeByID(ctx context.Context, futureIncomeID string) (*domain.FutureIncome, error)

	// ListFutureIncomes retrieves all future incomes, newest-first.
	ListFutureIncomes(ctx context.Context) ([]domain.FutureIncome, error)
}
