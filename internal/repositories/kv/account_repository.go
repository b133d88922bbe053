package kv

import (
	"context"
	"fmt"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// accountRepository implements repositories.AccountRepository over the store.
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(store *Store) repositories.AccountRepository {
	return &accountRepository{store: store}
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *accountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.store.accountIndex(accountID)
	if idx < 0 {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	account := r.store.accounts[idx]
	return &account, nil
}

// ListAccounts retrieves all accounts in insertion order.
func (r *accountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.copyAccounts(), nil
}

// SaveAccount persists a new account. IDs are unique.
func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.accountIndex(account.ID) >= 0 {
		return fmt.Errorf("account %s: %w", account.ID, apperrors.ErrDuplicate)
	}
	r.store.accounts = append(r.store.accounts, account)
	return nil
}

// DeleteAccount removes an account. Its transactions remain in the log.
func (r *accountRepository) DeleteAccount(_ context.Context, accountID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.store.accountIndex(accountID)
	if idx < 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	r.store.accounts = append(r.store.accounts[:idx], r.store.accounts[idx+1:]...)
	return nil
}
