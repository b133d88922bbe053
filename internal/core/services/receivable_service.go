package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
	"github.com/finbook-dev/finbook/internal/dto"
)

type receivableService struct {
	BaseService
	receivableRepo portsrepo.ReceivableRepository
}

// NewReceivableService creates a new receivable service.
func NewReceivableService(repo portsrepo.ReceivableRepository) *receivableService {
	return &receivableService{receivableRepo: repo}
}

// AddReceivable persists a new receivable with a fresh ID. Status defaults
// to pending; a receivable cannot be created already received.
func (s *receivableService) AddReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: receivable amount must be positive", apperrors.ErrValidation)
	}

	status := domain.ReceivableStatus(req.Status)
	if status == "" {
		status = domain.ReceivablePending
	}

	now := time.Now()
	receivable := domain.Receivable{
		ID:      uuid.NewString(),
		From:    req.From,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Status:  status,
		Note:    req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.receivableRepo.SaveReceivable(ctx, receivable); err != nil {
		s.LogError(ctx, err, "Failed to save receivable", slog.String("receivable_id", receivable.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Receivable added", slog.String("receivable_id", receivable.ID), slog.String("from", receivable.From))
	return &receivable, nil
}

// GetReceivableByID retrieves a specific receivable.
func (s *receivableService) GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	receivable, err := s.receivableRepo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receivable", slog.String("receivable_id", receivableID))
		}
		return nil, err
	}
	return receivable, nil
}

// ListReceivables retrieves all receivables, newest-first.
func (s *receivableService) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables")
		return nil, err
	}
	if receivables == nil {
		return []domain.Receivable{}, nil
	}
	return receivables, nil
}
