package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	Name    string             `json:"name" binding:"required,max=100"`
	Balance decimal.Decimal    `json:"balance"`
	Type    domain.AccountType `json:"type" binding:"required,oneof=cash bank savings investment"`
}

// AccountResponse defines the API representation of an account.
type AccountResponse struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Balance decimal.Decimal    `json:"balance"`
	Type    domain.AccountType `json:"type"`
}

// ToAccountResponse maps a domain account to its response DTO.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:      a.ID,
		Name:    a.Name,
		Balance: a.Balance,
		Type:    a.Type,
	}
}

// ToAccountResponses maps a slice of domain accounts to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	resp := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, ToAccountResponse(a))
	}
	return resp
}
