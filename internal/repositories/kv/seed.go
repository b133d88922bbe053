package kv

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// Built-in sample data used when a collection has never been persisted, so a
// fresh install starts with something to look at instead of empty screens.

func seedAccounts() []domain.Account {
	return []domain.Account{
		{ID: "1", Name: "Cash", Balance: decimal.NewFromInt(5000), Type: domain.Cash},
		{ID: "2", Name: "Reserve Cash", Balance: decimal.NewFromInt(15000), Type: domain.Cash},
		{ID: "3", Name: "Bkash", Balance: decimal.NewFromInt(2500), Type: domain.Bank},
		{ID: "4", Name: "Nagad", Balance: decimal.NewFromInt(1800), Type: domain.Bank},
		{ID: "5", Name: "Rocket", Balance: decimal.NewFromInt(1200), Type: domain.Bank},
		{ID: "6", Name: "Agrani Bank", Balance: decimal.NewFromInt(45000), Type: domain.Bank},
		{ID: "7", Name: "IBBL", Balance: decimal.NewFromInt(32000), Type: domain.Bank},
	}
}

func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "t1", Date: domain.NewDate(2026, time.February, 20), Amount: decimal.NewFromInt(3500), Category: "Salary", Description: "Monthly Salary", Type: domain.Income, AccountID: "2"},
		{ID: "t2", Date: domain.NewDate(2026, time.February, 21), Amount: decimal.NewFromInt(120), Category: "Groceries", Description: "Whole Foods", Type: domain.Expense, AccountID: "2"},
		{ID: "t3", Date: domain.NewDate(2026, time.January, 22), Amount: decimal.NewFromInt(45), Category: "Dining", Description: "Starbucks Coffee", Type: domain.Expense, AccountID: "3"},
		{ID: "t4", Date: domain.NewDate(2026, time.January, 23), Amount: decimal.NewFromInt(800), Category: "Rent", Description: "Apartment Rent", Type: domain.Expense, AccountID: "2"},
		{ID: "t5", Date: domain.NewDate(2026, time.January, 24), Amount: decimal.NewFromInt(200), Category: "Freelance", Description: "Logo Design Project", Type: domain.Income, AccountID: "2"},
		{ID: "t6", Date: domain.NewDate(2025, time.December, 15), Amount: decimal.NewFromInt(3500), Category: "Salary", Description: "Monthly Salary", Type: domain.Income, AccountID: "2"},
		{ID: "t7", Date: domain.NewDate(2025, time.December, 10), Amount: decimal.NewFromInt(1500), Category: "Expense", Description: "Laptop Purchase", Type: domain.Expense, AccountID: "6"},
		{ID: "t8", Date: domain.NewDate(2025, time.November, 5), Amount: decimal.NewFromInt(3500), Category: "Salary", Description: "Monthly Salary", Type: domain.Income, AccountID: "2"},
		{ID: "t9", Date: domain.NewDate(2025, time.November, 12), Amount: decimal.NewFromInt(500), Category: "Expense", Description: "Car Service", Type: domain.Expense, AccountID: "2"},
	}
}

func seedReceivables() []domain.Receivable {
	return []domain.Receivable{
		{ID: "r1", From: "John Doe", Amount: decimal.NewFromInt(500), DueDate: domain.NewDate(2024, time.June, 1), Status: domain.ReceivablePending},
		{ID: "r2", From: "Tech Corp", Amount: decimal.NewFromInt(2500), DueDate: domain.NewDate(2024, time.May, 15), Status: domain.ReceivableOverdue},
		{ID: "r3", From: "Sarah Smith", Amount: decimal.NewFromInt(150), DueDate: domain.NewDate(2024, time.May, 28), Status: domain.ReceivablePending},
	}
}

func seedFutureIncomes() []domain.FutureIncome {
	return []domain.FutureIncome{
		{ID: "f1", Name: "Company X", Title: "Quarterly Bonus", Amount: decimal.NewFromInt(5000), DueDate: domain.NewDate(2024, time.July, 15), Status: domain.FutureIncomePending, Probability: decimal.NewFromFloat(0.8)},
		{ID: "f2", Name: "IRS", Title: "Tax Refund", Amount: decimal.NewFromInt(1200), DueDate: domain.NewDate(2024, time.June, 10), Status: domain.FutureIncomePending, Probability: decimal.NewFromInt(1)},
		{ID: "f3", Name: "E-Trade", Title: "Stock Dividends", Amount: decimal.NewFromInt(300), DueDate: domain.NewDate(2024, time.June, 20), Status: domain.FutureIncomePending, Probability: decimal.NewFromFloat(0.6)},
	}
}
