package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// RecordTransactionRequest defines the payload for recording a transaction.
// Date defaults to today when omitted.
type RecordTransactionRequest struct {
	AccountID string                 `json:"accountId" binding:"required"`
	Amount    decimal.Decimal        `json:"amount" binding:"required"`
	Type      domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Note      string                 `json:"note" binding:"max=255"`
	Date      *domain.Date           `json:"date"`
}

// ListTransactionsParams carries the optional query filters for the
// transaction log.
type ListTransactionsParams struct {
	Date  string `form:"date"`
	Month string `form:"month"`
}

// TransactionResponse defines the API representation of a transaction.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	Date        domain.Date            `json:"date"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Type        domain.TransactionType `json:"type"`
	AccountID   string                 `json:"accountId"`
}

// ToTransactionResponse maps a domain transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Type:        t.Type,
		AccountID:   t.AccountID,
	}
}

// ToTransactionResponses maps a slice of domain transactions to response DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, ToTransactionResponse(t))
	}
	return resp
}
