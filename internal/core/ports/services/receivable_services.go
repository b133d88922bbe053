package services

import (
	"context"

	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/dto"
)

// ReceivableSvcFacade manages the receivable collection. Receipt settlement
// lives on LedgerSvc.
type ReceivableSvcFacade interface {
	// AddReceivable persists a new receivable.
	AddReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error)

	// GetReceivableByID retrieves a specific receivable by its identifier.
	GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)

	// ListReceivables retrieves all receivables, newest-first.
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
}
