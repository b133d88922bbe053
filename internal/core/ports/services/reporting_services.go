package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// ReportingSvc derives aggregate views from the entity store. All methods
// are read-only.
type ReportingSvc interface {
	// NetWorth computes the current, receivable-inclusive and
	// future-weighted balances plus the current month's totals.
	NetWorth(ctx context.Context) (*domain.NetWorthReport, error)

	// CurrentMonthSummary computes income and expense totals for the
	// calendar month containing today.
	CurrentMonthSummary(ctx context.Context) (*domain.MonthSummary, error)

	// DailySummary computes income, expense and net for a single date.
	DailySummary(ctx context.Context, date domain.Date) (*domain.DailySummary, error)

	// HistoryByMonth groups the transaction log by month, newest month
	// first, reconstructing the end-of-month balance for each group.
	HistoryByMonth(ctx context.Context) ([]domain.MonthSummary, error)

	// YearlyStatements builds a per-year grid of monthly totals, newest
	// year first.
	YearlyStatements(ctx context.Context) ([]domain.YearlyStatement, error)
}
