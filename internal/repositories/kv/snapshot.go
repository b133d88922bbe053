package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// SaveSnapshot serializes every collection and writes it under its key. The
// four keys are written independently; a failure part-way leaves earlier
// keys updated.
func (s *Store) SaveSnapshot(ctx context.Context) error {
	s.mu.RLock()
	accounts := s.copyAccounts()
	transactions := s.copyTransactions()
	receivables := s.copyReceivables()
	futureIncomes := s.copyFutureIncomes()
	s.mu.RUnlock()

	if err := putJSON(ctx, s.backend, KeyAccounts, accounts); err != nil {
		return err
	}
	if err := putJSON(ctx, s.backend, KeyTransactions, transactions); err != nil {
		return err
	}
	if err := putJSON(ctx, s.backend, KeyReceivables, receivables); err != nil {
		return err
	}
	return putJSON(ctx, s.backend, KeyFutureIncomes, futureIncomes)
}

// LoadSnapshot replaces the in-memory collections with the persisted state.
// A key that has never been written falls back to the seed data for that
// collection; a corrupt value is an error, not a silent reset.
func (s *Store) LoadSnapshot(ctx context.Context) error {
	accounts, err := getJSON(ctx, s.backend, KeyAccounts, seedAccounts)
	if err != nil {
		return err
	}
	transactions, err := getJSON(ctx, s.backend, KeyTransactions, seedTransactions)
	if err != nil {
		return err
	}
	receivables, err := getJSON(ctx, s.backend, KeyReceivables, seedReceivables)
	if err != nil {
		return err
	}
	futureIncomes, err := getJSON(ctx, s.backend, KeyFutureIncomes, seedFutureIncomes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accounts = accounts
	s.transactions = transactions
	s.receivables = receivables
	s.futureIncomes = futureIncomes
	s.mu.Unlock()
	return nil
}

// ResetSnapshot restores the seed data in memory and persists it.
func (s *Store) ResetSnapshot(ctx context.Context) error {
	s.mu.Lock()
	s.accounts = seedAccounts()
	s.transactions = seedTransactions()
	s.receivables = seedReceivables()
	s.futureIncomes = seedFutureIncomes()
	s.mu.Unlock()

	return s.SaveSnapshot(ctx)
}

func putJSON[T any](ctx context.Context, backend Backend, key string, value []T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func getJSON[T any](ctx context.Context, backend Backend, key string, seed func() []T) ([]T, error) {
	data, err := backend.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return out, nil
}
