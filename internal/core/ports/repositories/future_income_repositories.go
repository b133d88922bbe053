package repositories

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// FutureIncomeReader defines read operations for future income data
type FutureIncomeReader interface {
	// FindFutureIncomeByID retrieves a specific future income by its identifier.
	FindFutureIncomeByID(ctx context.Context, futureIncomeID string) (*domain.FutureIncome, error)

	// ListFutureIncomes retrieves all future incomes, newest-first.
	ListFutureIncomes(ctx context.Context) ([]domain.FutureIncome, error)
}

// FutureIncomeWriter defines write operations for future income data.
// Receipt settlement goes through LedgerRepository postings.
type FutureIncomeWriter interface {
	// SaveFutureIncome persists a new future income.
	SaveFutureIncome(ctx context.Context, income domain.FutureIncome) error
}

// FutureIncomeRepository combines all future-income-related repository interfaces
type FutureIncomeRepository interface {
	FutureIncomeReader
	FutureIncomeWriter
}
