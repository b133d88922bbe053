package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorthReport is the balance-sheet view of the entity store.
// TotalBalance is the net worth: liquid cash plus uncollected receivables.
type NetWorthReport struct {
	Cash                 decimal.Decimal `json:"cash"`
	CashReceivable       decimal.Decimal `json:"cashReceivable"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	FutureIncome         decimal.Decimal `json:"futureIncome"`
	WeightedFutureIncome decimal.Decimal `json:"weightedFutureIncome"`
	FutureBalance        decimal.Decimal `json:"futureBalance"`
	MonthIncome          decimal.Decimal `json:"monthIncome"`
	MonthExpense         decimal.Decimal `json:"monthExpense"`
}

// MonthSummary aggregates one calendar month of transactions. EndBalance is
// the reconstructed total account balance at the close of the month.
type MonthSummary struct {
	Month      string          `json:"month"` // "YYYY-MM"
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	EndBalance decimal.Decimal `json:"endBalance"`
}

// DailySummary aggregates the transactions of a single calendar day.
type DailySummary struct {
	Date    Date            `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthTotals is one row of a yearly statement grid.
// Month is the zero-based month-of-year (0 = January).
type MonthTotals struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// YearlyStatement groups a calendar year of transactions by month-of-year.
type YearlyStatement struct {
	Year         int             `json:"year"`
	Months       []MonthTotals   `json:"months"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}
