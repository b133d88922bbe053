// Package kv implements the entity store and its persistence adapters. The
// whole data set lives in memory and is snapshotted to a key-value byte
// store, one JSON array per collection key.
package kv

import (
	"context"
	"errors"
)

// Collection keys of the byte store. Each key holds one independently
// serialized JSON array.
const (
	KeyAccounts      = "accounts"
	KeyTransactions  = "transactions"
	KeyReceivables   = "receivables"
	KeyFutureIncomes = "future_incomes"
)

// ErrKeyNotFound is returned by Backend.Get when a key has never been
// written. The store treats it as "use seed data".
var ErrKeyNotFound = errors.New("kv: key not found")

// Backend is a minimal key-value byte store. Implementations must make Put
// durable before returning.
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
