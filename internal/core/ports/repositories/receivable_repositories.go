package repositories

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
)

// ReceivableReader defines read operations for receivable data
type ReceivableReader interface {
	// FindReceivableByID retrieves a specific receivable by its identifier.
	FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)

	// ListReceivables retrieves all receivables, newest-first.
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
}

// ReceivableWriter defines write operations for receivable data.
// Receipt settlement goes through LedgerRepository postings.
type ReceivableWriter interface {
	// SaveReceivable persists a new receivable.
	SaveReceivable(ctx context.Context, receivable domain.Receivable) error
}

// ReceivableRepository combines all receivable-related repository interfaces
type ReceivableRepository interface {
	ReceivableReader
	ReceivableWriter
}
