package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/core/domain"
	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
)

// reportingService derives presentational aggregates from the entity store.
// Every report is recomputed from the collections on each call; nothing is
// cached, so reports are always consistent with the latest postings.
type reportingService struct {
	BaseService
	accountRepo      portsrepo.AccountReader
	transactionRepo  portsrepo.TransactionReader
	receivableRepo   portsrepo.ReceivableReader
	futureIncomeRepo portsrepo.FutureIncomeReader
	today            func() domain.Date
}

// ReportingServiceOption configures a reporting service.
type ReportingServiceOption func(*reportingService)

// WithClock overrides the source of "today" used for current-month and
// current-year boundaries.
func WithClock(today func() domain.Date) ReportingServiceOption {
	return func(s *reportingService) {
		s.today = today
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionReader, receivableRepo portsrepo.ReceivableReader, futureIncomeRepo portsrepo.FutureIncomeReader, opts ...ReportingServiceOption) *reportingService {
	s := &reportingService{
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		receivableRepo:   receivableRepo,
		futureIncomeRepo: futureIncomeRepo,
		today:            domain.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NetWorth computes the balance-sheet report: liquid cash, uncollected
// receivables, anticipated income (raw and probability-weighted) and the
// current month's flow totals.
func (s *reportingService) NetWorth(ctx context.Context) (*domain.NetWorthReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		return nil, err
	}
	futureIncomes, err := s.futureIncomeRepo.ListFutureIncomes(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	cash := decimal.Zero
	for _, a := range accounts {
		cash = cash.Add(a.Balance)
	}

	cashReceivable := decimal.Zero
	for _, r := range receivables {
		if !r.IsReceived() {
			cashReceivable = cashReceivable.Add(r.Amount)
		}
	}

	futureIncome := decimal.Zero
	weightedFutureIncome := decimal.Zero
	for _, f := range futureIncomes {
		if !f.IsReceived() {
			futureIncome = futureIncome.Add(f.Amount)
			weightedFutureIncome = weightedFutureIncome.Add(f.WeightedAmount())
		}
	}

	monthIncome, monthExpense := monthTotals(txns, s.today().MonthKey())

	totalBalance := cash.Add(cashReceivable)
	return &domain.NetWorthReport{
		Cash:                 cash,
		CashReceivable:       cashReceivable,
		TotalBalance:         totalBalance,
		FutureIncome:         futureIncome,
		WeightedFutureIncome: weightedFutureIncome,
		FutureBalance:        totalBalance.Add(futureIncome),
		MonthIncome:          monthIncome,
		MonthExpense:         monthExpense,
	}, nil
}

// CurrentMonthSummary computes the flow totals for the month containing
// today. EndBalance is the current total account balance.
func (s *reportingService) CurrentMonthSummary(ctx context.Context) (*domain.MonthSummary, error) {
	history, err := s.HistoryByMonth(ctx)
	if err != nil {
		return nil, err
	}
	// HistoryByMonth always emits the current month first.
	current := history[0]
	return &current, nil
}

// DailySummary computes income, expense and net for a single date.
func (s *reportingService) DailySummary(ctx context.Context, date domain.Date) (*domain.DailySummary, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if t.Date.String() != date.String() {
			continue
		}
		if t.Type == domain.Income {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return &domain.DailySummary{
		Date:    date,
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}

// HistoryByMonth groups the transaction log by month key, newest month
// first, with the current month always present. The end-of-month balance is
// reconstructed from the current total balance by reversing every
// transaction dated in a strictly later month.
func (s *reportingService) HistoryByMonth(ctx context.Context) ([]domain.MonthSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	currentBalance := decimal.Zero
	for _, a := range accounts {
		currentBalance = currentBalance.Add(a.Balance)
	}

	monthSet := map[string]bool{s.today().MonthKey(): true}
	for _, t := range txns {
		monthSet[t.Date.MonthKey()] = true
	}
	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	summaries := make([]domain.MonthSummary, 0, len(months))
	for _, m := range months {
		income, expense := monthTotals(txns, m)

		// Undo everything that happened after this month to recover the
		// balance as of its close.
		endBalance := currentBalance
		for _, t := range txns {
			if t.Date.MonthKey() > m {
				endBalance = endBalance.Sub(t.SignedAmount())
			}
		}

		summaries = append(summaries, domain.MonthSummary{
			Month:      m,
			Income:     income,
			Expense:    expense,
			EndBalance: endBalance,
		})
	}
	return summaries, nil
}

// YearlyStatements builds a per-year grid of monthly flow totals, newest
// year first. Past years carry all twelve months; the current year stops at
// the current month unless a later month already has activity.
func (s *reportingService) YearlyStatements(ctx context.Context) ([]domain.YearlyStatement, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	type yearAccum struct {
		months       [12]domain.MonthTotals
		totalIncome  decimal.Decimal
		totalExpense decimal.Decimal
	}
	years := map[int]*yearAccum{}

	for _, t := range txns {
		year := t.Date.Year()
		month := int(t.Date.Month()) - 1

		acc, ok := years[year]
		if !ok {
			acc = &yearAccum{}
			for i := range acc.months {
				acc.months[i] = domain.MonthTotals{Month: i, Income: decimal.Zero, Expense: decimal.Zero}
			}
			years[year] = acc
		}

		if t.Type == domain.Income {
			acc.months[month].Income = acc.months[month].Income.Add(t.Amount)
			acc.totalIncome = acc.totalIncome.Add(t.Amount)
		} else {
			acc.months[month].Expense = acc.months[month].Expense.Add(t.Amount)
			acc.totalExpense = acc.totalExpense.Add(t.Amount)
		}
	}

	today := s.today()
	statements := make([]domain.YearlyStatement, 0, len(years))
	for year, acc := range years {
		months := make([]domain.MonthTotals, 0, 12)
		for i, m := range acc.months {
			if year == today.Year() && i > int(today.Month())-1 && m.Income.IsZero() && m.Expense.IsZero() {
				continue
			}
			months = append(months, m)
		}
		statements = append(statements, domain.YearlyStatement{
			Year:         year,
			Months:       months,
			TotalIncome:  acc.totalIncome,
			TotalExpense: acc.totalExpense,
		})
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].Year > statements[j].Year
	})
	return statements, nil
}

// monthTotals sums income and expense for transactions in the given
// "YYYY-MM" month.
func monthTotals(txns []domain.Transaction, monthKey string) (decimal.Decimal, decimal.Decimal) {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if t.Date.MonthKey() != monthKey {
			continue
		}
		if t.Type == domain.Income {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}
