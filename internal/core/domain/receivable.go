package domain

import (
	"github.com/shopspring/decimal"
)

// ReceivableStatus indicates the collection state of a receivable.
type ReceivableStatus string

const (
	ReceivablePending  ReceivableStatus = "pending"
	ReceivableOverdue  ReceivableStatus = "overdue"
	ReceivableReceived ReceivableStatus = "received"
)

// Receivable is money owed to the user by a third party. Amount is the
// outstanding balance: it only decreases, via receipt postings, and reaches
// zero exactly when the receivable is marked received.
type Receivable struct {
	ID      string           `json:"id"`
	From    string           `json:"from"`
	Amount  decimal.Decimal  `json:"amount"`
	DueDate Date             `json:"dueDate"`
	Status  ReceivableStatus `json:"status"`
	Note    string           `json:"note,omitempty"`
	AuditFields
}

// IsReceived reports whether the receivable has been collected in full.
func (r Receivable) IsReceived() bool {
	return r.Status == ReceivableReceived
}
