package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FutureIncomeStatus indicates whether an anticipated income has arrived.
type FutureIncomeStatus string

const (
	FutureIncomePending  FutureIncomeStatus = "pending"
	FutureIncomeReceived FutureIncomeStatus = "received"
)

// FutureIncome is anticipated income not yet received, weighted by a
// probability-of-occurrence factor in [0,1]. Receipt semantics mirror
// Receivable, with the received date stamped on full receipt.
type FutureIncome struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"` // source of the income
	Title        string             `json:"title"`
	Amount       decimal.Decimal    `json:"amount"`
	DueDate      Date               `json:"dueDate"`
	ReceivedDate *Date              `json:"receivedDate,omitempty"`
	Status       FutureIncomeStatus `json:"status"`
	Probability  decimal.Decimal    `json:"probability"`
	Note         string             `json:"note,omitempty"`
	AuditFields
}

// UnmarshalJSON defaults a missing probability to 1, so snapshots written
// before the field existed keep their full weight. An explicit 0 is kept.
func (f *FutureIncome) UnmarshalJSON(data []byte) error {
	type plain FutureIncome
	aux := struct {
		*plain
		Probability *decimal.Decimal `json:"probability"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Probability == nil {
		f.Probability = decimal.NewFromInt(1)
	} else {
		f.Probability = *aux.Probability
	}
	return nil
}

// IsReceived reports whether the income has arrived in full.
func (f FutureIncome) IsReceived() bool {
	return f.Status == FutureIncomeReceived
}

// WeightedAmount returns the outstanding amount scaled by its probability.
func (f FutureIncome) WeightedAmount() decimal.Decimal {
	return f.Amount.Mul(f.Probability)
}
