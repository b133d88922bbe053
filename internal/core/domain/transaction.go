package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is one immutable entry in the append-only ledger. The log is
// kept newest-first for display.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"` // always positive; direction carried by Type
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"` // FK -> Account.ID (Not Null)
	AuditFields
}

// SignedAmount returns the amount with the sign of its effect on the owning
// account balance: positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the structural invariants of a transaction before posting.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.AccountID == "" {
		return fmt.Errorf("transaction account ID is required")
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
