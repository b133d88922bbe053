package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// NetWorthResponse defines the API representation of the net-worth report.
type NetWorthResponse struct {
	Cash                 decimal.Decimal `json:"cash"`
	CashReceivable       decimal.Decimal `json:"cashReceivable"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	FutureIncome         decimal.Decimal `json:"futureIncome"`
	WeightedFutureIncome decimal.Decimal `json:"weightedFutureIncome"`
	FutureBalance        decimal.Decimal `json:"futureBalance"`
	MonthIncome          decimal.Decimal `json:"monthIncome"`
	MonthExpense         decimal.Decimal `json:"monthExpense"`
}

// MonthSummaryResponse defines the API representation of a month group in
// the history report.
type MonthSummaryResponse struct {
	Month      string          `json:"month"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	EndBalance decimal.Decimal `json:"endBalance"`
}

// DailySummaryResponse defines the API representation of a single day's totals.
type DailySummaryResponse struct {
	Date    domain.Date     `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthTotalsResponse defines one cell of the yearly grid. Month is
// zero-based, January = 0.
type MonthTotalsResponse struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// YearlyStatementResponse defines the API representation of one year of the
// yearly report.
type YearlyStatementResponse struct {
	Year         int                   `json:"year"`
	Months       []MonthTotalsResponse `json:"months"`
	TotalIncome  decimal.Decimal       `json:"totalIncome"`
	TotalExpense decimal.Decimal       `json:"totalExpense"`
}

// ToNetWorthResponse maps the domain report to its response DTO.
func ToNetWorthResponse(r domain.NetWorthReport) NetWorthResponse {
	return NetWorthResponse{
		Cash:                 r.Cash,
		CashReceivable:       r.CashReceivable,
		TotalBalance:         r.TotalBalance,
		FutureIncome:         r.FutureIncome,
		WeightedFutureIncome: r.WeightedFutureIncome,
		FutureBalance:        r.FutureBalance,
		MonthIncome:          r.MonthIncome,
		MonthExpense:         r.MonthExpense,
	}
}

// ToMonthSummaryResponse maps a domain month summary to its response DTO.
func ToMonthSummaryResponse(m domain.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:      m.Month,
		Income:     m.Income,
		Expense:    m.Expense,
		EndBalance: m.EndBalance,
	}
}

// ToMonthSummaryResponses maps a slice of domain month summaries to response DTOs.
func ToMonthSummaryResponses(months []domain.MonthSummary) []MonthSummaryResponse {
	resp := make([]MonthSummaryResponse, 0, len(months))
	for _, m := range months {
		resp = append(resp, ToMonthSummaryResponse(m))
	}
	return resp
}

// ToDailySummaryResponse maps a domain daily summary to its response DTO.
func ToDailySummaryResponse(d domain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:    d.Date,
		Income:  d.Income,
		Expense: d.Expense,
		Net:     d.Net,
	}
}

// ToYearlyStatementResponse maps a domain yearly statement to its response DTO.
func ToYearlyStatementResponse(y domain.YearlyStatement) YearlyStatementResponse {
	months := make([]MonthTotalsResponse, 0, len(y.Months))
	for _, m := range y.Months {
		months = append(months, MonthTotalsResponse{
			Month:   m.Month,
			Income:  m.Income,
			Expense: m.Expense,
		})
	}
	return YearlyStatementResponse{
		Year:         y.Year,
		Months:       months,
		TotalIncome:  y.TotalIncome,
		TotalExpense: y.TotalExpense,
	}
}

// ToYearlyStatementResponses maps a slice of domain yearly statements to
// response DTOs.
func ToYearlyStatementResponses(years []domain.YearlyStatement) []YearlyStatementResponse {
	resp := make([]YearlyStatementResponse, 0, len(years))
	for _, y := range years {
		resp = append(resp, ToYearlyStatementResponse(y))
	}
	return resp
}
