package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// CreateFutureIncomeRequest defines the payload for adding a future income.
// Probability defaults to 1 when omitted.
type CreateFutureIncomeRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Title       string           `json:"title" binding:"required,max=100"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	DueDate     domain.Date      `json:"dueDate" binding:"required"`
	Probability *decimal.Decimal `json:"probability"`
	Note        string           `json:"note" binding:"max=255"`
}

// FutureIncomeResponse defines the API representation of a future income.
type FutureIncomeResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Title        string                    `json:"title"`
	Amount       decimal.Decimal           `json:"amount"`
	DueDate      domain.Date               `json:"dueDate"`
	ReceivedDate *domain.Date              `json:"receivedDate,omitempty"`
	Status       domain.FutureIncomeStatus `json:"status"`
	Probability  decimal.Decimal           `json:"probability"`
	Note         string                    `json:"note,omitempty"`
}

// FutureIncomeReceiptResponse pairs the updated future income with the
// income transaction posted for the receipt.
type FutureIncomeReceiptResponse struct {
	FutureIncome FutureIncomeResponse `json:"futureIncome"`
	Transaction  TransactionResponse  `json:"transaction"`
}

// ToFutureIncomeResponse maps a domain future income to its response DTO.
func ToFutureIncomeResponse(f domain.FutureIncome) FutureIncomeResponse {
	return FutureIncomeResponse{
		ID:           f.ID,
		Name:         f.Name,
		Title:        f.Title,
		Amount:       f.Amount,
		DueDate:      f.DueDate,
		ReceivedDate: f.ReceivedDate,
		Status:       f.Status,
		Probability:  f.Probability,
		Note:         f.Note,
	}
}

// ToFutureIncomeResponses maps a slice of domain future incomes to response DTOs.
func ToFutureIncomeResponses(incomes []domain.FutureIncome) []FutureIncomeResponse {
	resp := make([]FutureIncomeResponse, 0, len(incomes))
	for _, f := range incomes {
		resp = append(resp, ToFutureIncomeResponse(f))
	}
	return resp
}
