package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType categorizes where the money of an account is held.
type AccountType string

const (
	Cash       AccountType = "cash"
	Bank       AccountType = "bank"
	Savings    AccountType = "savings"
	Investment AccountType = "investment"
)

// Account represents a liquid money holding within the core domain.
// The balance is signed and mutated only by ledger postings.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    AccountType     `json:"type"`
	AuditFields
}
