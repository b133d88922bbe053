package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// CreateReceivableRequest defines the payload for adding a receivable.
type CreateReceivableRequest struct {
	From    string          `json:"from" binding:"required,max=100"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	DueDate domain.Date     `json:"dueDate" binding:"required"`
	Status  string          `json:"status" binding:"omitempty,oneof=pending overdue"`
	Note    string          `json:"note" binding:"max=255"`
}

// ReceiveFundsRequest defines the payload for settling a payment of a
// receivable or future income into an account.
type ReceiveFundsRequest struct {
	AccountID string          `json:"accountId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// ReceivableResponse defines the API representation of a receivable.
type ReceivableResponse struct {
	ID      string                  `json:"id"`
	From    string                  `json:"from"`
	Amount  decimal.Decimal         `json:"amount"`
	DueDate domain.Date             `json:"dueDate"`
	Status  domain.ReceivableStatus `json:"status"`
	Note    string                  `json:"note,omitempty"`
}

// ReceivableReceiptResponse pairs the updated receivable with the income
// transaction posted for the receipt.
type ReceivableReceiptResponse struct {
	Receivable  ReceivableResponse  `json:"receivable"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToReceivableResponse maps a domain receivable to its response DTO.
func ToReceivableResponse(r domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:      r.ID,
		From:    r.From,
		Amount:  r.Amount,
		DueDate: r.DueDate,
		Status:  r.Status,
		Note:    r.Note,
	}
}

// ToReceivableResponses maps a slice of domain receivables to response DTOs.
func ToReceivableResponses(receivables []domain.Receivable) []ReceivableResponse {
	resp := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		resp = append(resp, ToReceivableResponse(r))
	}
	return resp
}
