package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// SelectViewRequest defines the payload for switching the active view.
type SelectViewRequest struct {
	View domain.ViewType `json:"view" binding:"required,viewtype"`
}

// ViewResponse carries the active view name plus the payload the view
// renders. Only the fields relevant to the view are populated.
type ViewResponse struct {
	View         domain.ViewType           `json:"view"`
	NetWorth     *NetWorthResponse         `json:"netWorth,omitempty"`
	Accounts     []AccountResponse         `json:"accounts,omitempty"`
	Transactions []TransactionResponse     `json:"transactions,omitempty"`
	Receivables  []ReceivableResponse      `json:"receivables,omitempty"`
	FutureIncome []FutureIncomeResponse    `json:"futureIncome,omitempty"`
	Daily        *DailySummaryResponse     `json:"daily,omitempty"`
	History      []MonthSummaryResponse    `json:"history,omitempty"`
	Yearly       []YearlyStatementResponse `json:"yearly,omitempty"`
}

// RegisterCustomValidations wires domain-specific validators into the gin
// binding engine.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("viewtype", func(fl validator.FieldLevel) bool {
		return domain.ViewType(fl.Field().String()).Valid()
	})
}
