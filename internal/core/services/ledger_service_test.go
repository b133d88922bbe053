package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
	"github.com/finbook-dev/finbook/internal/core/services"
	"github.com/finbook-dev/finbook/internal/dto"
)

// --- Mocks ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) PostTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) PostReceivableReceipt(ctx context.Context, receivableID string, amountReceived decimal.Decimal, txn domain.Transaction) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID, amountReceived, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockLedgerRepository) PostFutureIncomeReceipt(ctx context.Context, futureIncomeID string, amountReceived decimal.Decimal, receivedDate domain.Date, txn domain.Transaction) (*domain.FutureIncome, error) {
	args := m.Called(ctx, futureIncomeID, amountReceived, receivedDate, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FutureIncome), args.Error(1)
}

type MockReceivableReader struct {
	mock.Mock
}

func (m *MockReceivableReader) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockReceivableReader) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}

type MockFutureIncomeReader struct {
	mock.Mock
}

func (m *MockFutureIncomeReader) FindFutureIncomeByID(ctx context.Context, futureIncomeID string) (*domain.FutureIncome, error) {
	args := m.Called(ctx, futureIncomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FutureIncome), args.Error(1)
}

func (m *MockFutureIncomeReader) ListFutureIncomes(ctx context.Context) ([]domain.FutureIncome, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FutureIncome), args.Error(1)
}

// --- Test Suite Setup ---

var fixedToday = domain.NewDate(2026, time.February, 25)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo       *MockLedgerRepository
	mockReceivableRepo   *MockReceivableReader
	mockFutureIncomeRepo *MockFutureIncomeReader
	service              portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockReceivableRepo = new(MockReceivableReader)
	suite.mockFutureIncomeRepo = new(MockFutureIncomeReader)
	suite.service = services.NewLedgerService(
		suite.mockLedgerRepo,
		suite.mockReceivableRepo,
		suite.mockFutureIncomeRepo,
		services.WithLedgerClock(func() domain.Date { return fixedToday }),
	)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordTransaction_IncomeDefaults() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.Income,
	}

	suite.mockLedgerRepo.On("PostTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.ID)
	suite.Equal("Direct Income", txn.Category)
	suite.Equal("Credit", txn.Description)
	suite.Equal(fixedToday.String(), txn.Date.String())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ExpenseWithNoteAndDate() {
	ctx := context.Background()
	date := domain.NewDate(2026, time.January, 10)
	req := dto.RecordTransactionRequest{
		AccountID: "2",
		Amount:    decimal.NewFromInt(45),
		Type:      domain.Expense,
		Note:      "Coffee",
		Date:      &date,
	}

	suite.mockLedgerRepo.On("PostTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Category == "Direct Expense" &&
			txn.Description == "Coffee" &&
			txn.Date.String() == "2026-01-10"
	})).Return(nil).Once()

	_, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		AccountID: "1",
		Amount:    decimal.Zero,
		Type:      domain.Income,
	}

	_, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_PropagatesUnknownAccount() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		AccountID: "missing",
		Amount:    decimal.NewFromInt(10),
		Type:      domain.Income,
	}

	repoErr := fmt.Errorf("account missing: %w", apperrors.ErrNotFound)
	suite.mockLedgerRepo.On("PostTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(repoErr).Once()

	_, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LedgerServiceTestSuite) TestReceiveReceivable_FullPayment() {
	ctx := context.Background()
	outstanding := &domain.Receivable{
		ID:     "r1",
		From:   "John Doe",
		Amount: decimal.NewFromInt(500),
		Status: domain.ReceivablePending,
	}
	settled := &domain.Receivable{
		ID:     "r1",
		From:   "John Doe",
		Amount: decimal.Zero,
		Status: domain.ReceivableReceived,
	}

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "r1").Return(outstanding, nil).Once()
	suite.mockLedgerRepo.On("PostReceivableReceipt", ctx, "r1", decimal.NewFromInt(500), mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income &&
			txn.Amount.Equal(decimal.NewFromInt(500)) &&
			txn.Description == "Received from John Doe" &&
			txn.AccountID == "1"
	})).Return(settled, nil).Once()

	updated, txn, err := suite.service.ReceiveReceivable(ctx, "r1", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ReceivableReceived, updated.Status)
	suite.True(updated.Amount.IsZero())
	suite.Require().NotNil(txn)
	suite.Equal(fixedToday.String(), txn.Date.String())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReceiveReceivable_PartialPayment() {
	ctx := context.Background()
	outstanding := &domain.Receivable{
		ID:     "r1",
		From:   "John Doe",
		Amount: decimal.NewFromInt(500),
		Status: domain.ReceivablePending,
	}
	remaining := &domain.Receivable{
		ID:     "r1",
		From:   "John Doe",
		Amount: decimal.NewFromInt(300),
		Status: domain.ReceivablePending,
	}

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "r1").Return(outstanding, nil).Once()
	suite.mockLedgerRepo.On("PostReceivableReceipt", ctx, "r1", decimal.NewFromInt(200), mock.AnythingOfType("domain.Transaction")).Return(remaining, nil).Once()

	updated, txn, err := suite.service.ReceiveReceivable(ctx, "r1", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(200),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ReceivablePending, updated.Status)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(300)))
	suite.True(txn.Amount.Equal(decimal.NewFromInt(200)))
}

func (suite *LedgerServiceTestSuite) TestReceiveReceivable_NoteCarriedIntoDescription() {
	ctx := context.Background()
	outstanding := &domain.Receivable{
		ID:     "r2",
		From:   "Tech Corp",
		Amount: decimal.NewFromInt(2500),
		Status: domain.ReceivableOverdue,
		Note:   "Invoice #42",
	}

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "r2").Return(outstanding, nil).Once()
	suite.mockLedgerRepo.On("PostReceivableReceipt", ctx, "r2", decimal.NewFromInt(2500), mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == "Received from Tech Corp: Invoice #42"
	})).Return(&domain.Receivable{ID: "r2", Status: domain.ReceivableReceived}, nil).Once()

	_, _, err := suite.service.ReceiveReceivable(ctx, "r2", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(2500),
	})

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReceiveReceivable_RejectsAlreadyReceived() {
	ctx := context.Background()
	received := &domain.Receivable{
		ID:     "r1",
		From:   "John Doe",
		Amount: decimal.Zero,
		Status: domain.ReceivableReceived,
	}

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "r1").Return(received, nil).Once()

	_, _, err := suite.service.ReceiveReceivable(ctx, "r1", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PostReceivableReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReceiveReceivable_NotFound() {
	ctx := context.Background()
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, "nope").Return(nil, fmt.Errorf("receivable nope: %w", apperrors.ErrNotFound)).Once()

	_, _, err := suite.service.ReceiveReceivable(ctx, "nope", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LedgerServiceTestSuite) TestReceiveFutureIncome_FullPaymentStampsDate() {
	ctx := context.Background()
	pending := &domain.FutureIncome{
		ID:     "f2",
		Name:   "IRS",
		Title:  "Tax Refund",
		Amount: decimal.NewFromInt(1200),
		Status: domain.FutureIncomePending,
	}
	receivedDate := fixedToday
	settled := &domain.FutureIncome{
		ID:           "f2",
		Name:         "IRS",
		Title:        "Tax Refund",
		Amount:       decimal.Zero,
		Status:       domain.FutureIncomeReceived,
		ReceivedDate: &receivedDate,
	}

	suite.mockFutureIncomeRepo.On("FindFutureIncomeByID", ctx, "f2").Return(pending, nil).Once()
	suite.mockLedgerRepo.On("PostFutureIncomeReceipt", ctx, "f2", decimal.NewFromInt(1200), fixedToday, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == "Received Future Income (Tax Refund)" && txn.Type == domain.Income
	})).Return(settled, nil).Once()

	updated, txn, err := suite.service.ReceiveFutureIncome(ctx, "f2", dto.ReceiveFundsRequest{
		AccountID: "2",
		Amount:    decimal.NewFromInt(1200),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.FutureIncomeReceived, updated.Status)
	suite.Require().NotNil(updated.ReceivedDate)
	suite.Equal(fixedToday.String(), updated.ReceivedDate.String())
	suite.True(txn.Amount.Equal(decimal.NewFromInt(1200)))
}

func (suite *LedgerServiceTestSuite) TestReceiveFutureIncome_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, _, err := suite.service.ReceiveFutureIncome(ctx, "f1", dto.ReceiveFundsRequest{
		AccountID: "1",
		Amount:    decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockFutureIncomeRepo.AssertNotCalled(suite.T(), "FindFutureIncomeByID", mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
