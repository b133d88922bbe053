package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/dto"
)

// cashViewRecentLimit caps the recent-activity list on the cash view.
const cashViewRecentLimit = 5

// viewService tracks the active view selection and assembles the payload
// each view renders. Navigation has no guards: any view is selectable from
// any other.
type viewService struct {
	BaseService
	account      portssvc.AccountReaderSvc
	transaction  portssvc.TransactionSvcFacade
	receivable   portssvc.ReceivableSvcFacade
	futureIncome portssvc.FutureIncomeSvcFacade
	reporting    portssvc.ReportingSvc
	today        func() domain.Date

	mu     sync.RWMutex
	active domain.ViewType
}

// ViewServiceOption configures a view service.
type ViewServiceOption func(*viewService)

// WithViewClock overrides the source of "today" used by the daily view.
func WithViewClock(today func() domain.Date) ViewServiceOption {
	return func(s *viewService) {
		s.today = today
	}
}

// NewViewService creates a new view service starting on the balance view.
func NewViewService(account portssvc.AccountReaderSvc, transaction portssvc.TransactionSvcFacade, receivable portssvc.ReceivableSvcFacade, futureIncome portssvc.FutureIncomeSvcFacade, reporting portssvc.ReportingSvc, opts ...ViewServiceOption) *viewService {
	s := &viewService{
		account:      account,
		transaction:  transaction,
		receivable:   receivable,
		futureIncome: futureIncome,
		reporting:    reporting,
		today:        domain.Today,
		active:       domain.ViewBalance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveView returns the currently selected view.
func (s *viewService) ActiveView(_ context.Context) domain.ViewType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SelectView switches the active view.
func (s *viewService) SelectView(ctx context.Context, view domain.ViewType) error {
	if !view.Valid() {
		return fmt.Errorf("%w: unknown view %q", apperrors.ErrValidation, view)
	}

	s.mu.Lock()
	s.active = view
	s.mu.Unlock()

	s.LogDebug(ctx, "View selected", slog.String("view", string(view)))
	return nil
}

// GetView assembles the payload for the named view.
func (s *viewService) GetView(ctx context.Context, view domain.ViewType) (*dto.ViewResponse, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("%w: unknown view %q", apperrors.ErrValidation, view)
	}

	resp := &dto.ViewResponse{View: view}

	switch view {
	case domain.ViewBalance:
		report, err := s.reporting.NetWorth(ctx)
		if err != nil {
			return nil, err
		}
		netWorth := dto.ToNetWorthResponse(*report)
		resp.NetWorth = &netWorth

	case domain.ViewDaily:
		today := s.today()
		daily, err := s.reporting.DailySummary(ctx, today)
		if err != nil {
			return nil, err
		}
		txns, err := s.transaction.ListTransactions(ctx, dto.ListTransactionsParams{Date: today.String()})
		if err != nil {
			return nil, err
		}
		summary := dto.ToDailySummaryResponse(*daily)
		resp.Daily = &summary
		resp.Transactions = dto.ToTransactionResponses(txns)

	case domain.ViewCash:
		accounts, err := s.account.ListAccounts(ctx)
		if err != nil {
			return nil, err
		}
		report, err := s.reporting.NetWorth(ctx)
		if err != nil {
			return nil, err
		}
		txns, err := s.transaction.ListTransactions(ctx, dto.ListTransactionsParams{})
		if err != nil {
			return nil, err
		}
		if len(txns) > cashViewRecentLimit {
			txns = txns[:cashViewRecentLimit]
		}
		netWorth := dto.ToNetWorthResponse(*report)
		resp.NetWorth = &netWorth
		resp.Accounts = dto.ToAccountResponses(accounts)
		resp.Transactions = dto.ToTransactionResponses(txns)

	case domain.ViewReceivable:
		receivables, err := s.receivable.ListReceivables(ctx)
		if err != nil {
			return nil, err
		}
		report, err := s.reporting.NetWorth(ctx)
		if err != nil {
			return nil, err
		}
		netWorth := dto.ToNetWorthResponse(*report)
		resp.NetWorth = &netWorth
		resp.Receivables = dto.ToReceivableResponses(receivables)

	case domain.ViewFuture:
		incomes, err := s.futureIncome.ListFutureIncomes(ctx)
		if err != nil {
			return nil, err
		}
		report, err := s.reporting.NetWorth(ctx)
		if err != nil {
			return nil, err
		}
		netWorth := dto.ToNetWorthResponse(*report)
		resp.NetWorth = &netWorth
		resp.FutureIncome = dto.ToFutureIncomeResponses(incomes)

	case domain.ViewHistory:
		history, err := s.reporting.HistoryByMonth(ctx)
		if err != nil {
			return nil, err
		}
		resp.History = dto.ToMonthSummaryResponses(history)

	case domain.ViewYearly:
		yearly, err := s.reporting.YearlyStatements(ctx)
		if err != nil {
			return nil, err
		}
		resp.Yearly = dto.ToYearlyStatementResponses(yearly)
	}

	return resp, nil
}
