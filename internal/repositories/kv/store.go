package kv

import (
	"sync"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// Store is the in-memory entity store. All four collections live behind one
// RWMutex so multi-effect ledger postings are atomic with respect to every
// reader. Persistence goes through the snapshot methods.
type Store struct {
	mu      sync.RWMutex
	backend Backend

	accounts      []domain.Account
	transactions  []domain.Transaction // newest-first
	receivables   []domain.Receivable  // newest-first
	futureIncomes []domain.FutureIncome
}

// NewStore returns an empty store over the given backend. Call LoadSnapshot
// before serving traffic.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Backend exposes the underlying byte store, mainly for shutdown.
func (s *Store) Backend() Backend {
	return s.backend
}

// accountIndex returns the position of accountID, or -1.
// Caller must hold the lock.
func (s *Store) accountIndex(accountID string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == accountID {
			return i
		}
	}
	return -1
}

// receivableIndex returns the position of receivableID, or -1.
// Caller must hold the lock.
func (s *Store) receivableIndex(receivableID string) int {
	for i := range s.receivables {
		if s.receivables[i].ID == receivableID {
			return i
		}
	}
	return -1
}

// futureIncomeIndex returns the position of futureIncomeID, or -1.
// Caller must hold the lock.
func (s *Store) futureIncomeIndex(futureIncomeID string) int {
	for i := range s.futureIncomes {
		if s.futureIncomes[i].ID == futureIncomeID {
			return i
		}
	}
	return -1
}

// copyAccounts returns a copy of the accounts slice so callers never hold
// a reference into the store's backing array.
// Caller must hold at least the read lock.
func (s *Store) copyAccounts() []domain.Account {
	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) copyTransactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) copyReceivables() []domain.Receivable {
	out := make([]domain.Receivable, len(s.receivables))
	copy(out, s.receivables)
	return out
}

func (s *Store) copyFutureIncomes() []domain.FutureIncome {
	out := make([]domain.FutureIncome, len(s.futureIncomes))
	copy(out, s.futureIncomes)
	return out
}
