package repositories

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account from the store.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepository combines all account-related repository interfaces
type AccountRepository interface {
	AccountReader
	AccountWriter
}
