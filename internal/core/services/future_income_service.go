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

type futureIncomeService struct {
	BaseService
	futureIncomeRepo portsrepo.FutureIncomeRepository
}

// NewFutureIncomeService creates a new future income service.
func NewFutureIncomeService(repo portsrepo.FutureIncomeRepository) *futureIncomeService {
	return &futureIncomeService{futureIncomeRepo: repo}
}

// AddFutureIncome persists a new future income with a fresh ID. Probability
// defaults to 1 and must lie in [0,1].
func (s *futureIncomeService) AddFutureIncome(ctx context.Context, req dto.CreateFutureIncomeRequest) (*domain.FutureIncome, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: future income amount must be positive", apperrors.ErrValidation)
	}

	probability := decimal.NewFromInt(1)
	if req.Probability != nil {
		probability = *req.Probability
		if probability.LessThan(decimal.Zero) || probability.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("%w: probability must be between 0 and 1, got %s", apperrors.ErrValidation, probability)
		}
	}

	now := time.Now()
	income := domain.FutureIncome{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Title:       req.Title,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      domain.FutureIncomePending,
		Probability: probability,
		Note:        req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.futureIncomeRepo.SaveFutureIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save future income", slog.String("future_income_id", income.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Future income added", slog.String("future_income_id", income.ID), slog.String("title", income.Title))
	return &income, nil
}

// GetFutureIncomeByID retrieves a specific future income.
func (s *futureIncomeService) GetFutureIncomeByID(ctx context.Context, futureIncomeID string) (*domain.FutureIncome, error) {
	income, err := s.futureIncomeRepo.FindFutureIncomeByID(ctx, futureIncomeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find future income", slog.String("future_income_id", futureIncomeID))
		}
		return nil, err
	}
	return income, nil
}

// ListFutureIncomes retrieves all future incomes, newest-first.
func (s *futureIncomeService) ListFutureIncomes(ctx context.Context) ([]domain.FutureIncome, error) {
	incomes, err := s.futureIncomeRepo.ListFutureIncomes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list future incomes")
		return nil, err
	}
	if incomes == nil {
		return []domain.FutureIncome{}, nil
	}
	return incomes, nil
}
