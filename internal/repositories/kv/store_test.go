package kv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook-dev/finbook/internal/apperrors"
	"github.com/finbook-dev/finbook/internal/core/domain"
	"github.com/finbook-dev/finbook/internal/core/ports/repositories"
	"github.com/finbook-dev/finbook/internal/repositories/kv"
)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	backend, err := kv.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store := kv.NewStore(backend)
	require.NoError(t, store.LoadSnapshot(context.Background()))
	return store
}

func TestLoadSnapshotFallsBackToSeedData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	accounts, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 7)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(5000)))

	txns, err := repos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txns, 9)

	receivables, err := repos.ReceivableRepo.ListReceivables(ctx)
	require.NoError(t, err)
	require.Len(t, receivables, 3)
	assert.Equal(t, domain.ReceivableOverdue, receivables[1].Status)

	incomes, err := repos.FutureIncomeRepo.ListFutureIncomes(ctx)
	require.NoError(t, err)
	assert.Len(t, incomes, 3)
}

func TestSaveAndReloadSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, err := kv.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	store := kv.NewStore(backend)
	require.NoError(t, store.LoadSnapshot(ctx))
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "new-txn",
		Date:      domain.NewDate(2026, time.March, 1),
		Amount:    decimal.NewFromInt(250),
		Category:  "Direct Income",
		Type:      domain.Income,
		AccountID: "1",
	}
	require.NoError(t, repos.LedgerRepo.PostTransaction(ctx, txn))
	require.NoError(t, store.SaveSnapshot(ctx))

	// A fresh store over the same backend must see the persisted state, not
	// the seed data.
	reloaded := kv.NewStore(backend)
	require.NoError(t, reloaded.LoadSnapshot(ctx))
	reloadedRepos := kv.NewRepositoryProvider(reloaded)

	txns, err := reloadedRepos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 10)
	assert.Equal(t, "new-txn", txns[0].ID)

	account, err := reloadedRepos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5250)))
}

func TestResetSnapshotRestoresSeedData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "tmp",
		Date:      domain.NewDate(2026, time.March, 2),
		Amount:    decimal.NewFromInt(1),
		Type:      domain.Expense,
		AccountID: "1",
	}
	require.NoError(t, repos.LedgerRepo.PostTransaction(ctx, txn))

	require.NoError(t, store.ResetSnapshot(ctx))

	txns, err := repos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txns, 9)

	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5000)))
}

func TestPostTransactionRejectsUnknownAccount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "orphan",
		Date:      domain.NewDate(2026, time.March, 3),
		Amount:    decimal.NewFromInt(10),
		Type:      domain.Income,
		AccountID: "missing",
	}
	err := repos.LedgerRepo.PostTransaction(ctx, txn)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// No partial effect: the log is untouched.
	txns, listErr := repos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, listErr)
	assert.Len(t, txns, 9)
}

func TestPostReceivableReceiptFullPayment(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "receipt-1",
		Date:      domain.NewDate(2026, time.March, 4),
		Amount:    decimal.NewFromInt(500),
		Type:      domain.Income,
		AccountID: "1",
	}
	updated, err := repos.LedgerRepo.PostReceivableReceipt(ctx, "r1", decimal.NewFromInt(500), txn)
	require.NoError(t, err)

	// Record is retained, zeroed and marked received.
	assert.Equal(t, domain.ReceivableReceived, updated.Status)
	assert.True(t, updated.Amount.IsZero())

	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5500)))

	txns, err := repos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 10)
	assert.Equal(t, "receipt-1", txns[0].ID)

	receivables, err := repos.ReceivableRepo.ListReceivables(ctx)
	require.NoError(t, err)
	assert.Len(t, receivables, 3)
}

func TestPostReceivableReceiptPartialPayment(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "receipt-2",
		Date:      domain.NewDate(2026, time.March, 5),
		Amount:    decimal.NewFromInt(200),
		Type:      domain.Income,
		AccountID: "1",
	}
	updated, err := repos.LedgerRepo.PostReceivableReceipt(ctx, "r1", decimal.NewFromInt(200), txn)
	require.NoError(t, err)

	assert.Equal(t, domain.ReceivablePending, updated.Status)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(300)))

	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5200)))
}

func TestPostReceivableReceiptOverPaymentCreditsFullAmount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	// r3 is outstanding 150; paying 600 still credits the full 600.
	txn := domain.Transaction{
		ID:        "receipt-3",
		Date:      domain.NewDate(2026, time.March, 6),
		Amount:    decimal.NewFromInt(600),
		Type:      domain.Income,
		AccountID: "1",
	}
	updated, err := repos.LedgerRepo.PostReceivableReceipt(ctx, "r3", decimal.NewFromInt(600), txn)
	require.NoError(t, err)

	assert.Equal(t, domain.ReceivableReceived, updated.Status)
	assert.True(t, updated.Amount.IsZero())

	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5600)))
}

func TestPostReceivableReceiptRejectsAlreadyReceived(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "receipt-4",
		Date:      domain.NewDate(2026, time.March, 7),
		Amount:    decimal.NewFromInt(150),
		Type:      domain.Income,
		AccountID: "1",
	}
	_, err := repos.LedgerRepo.PostReceivableReceipt(ctx, "r3", decimal.NewFromInt(150), txn)
	require.NoError(t, err)

	txn.ID = "receipt-5"
	_, err = repos.LedgerRepo.PostReceivableReceipt(ctx, "r3", decimal.NewFromInt(150), txn)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestPostFutureIncomeReceiptStampsReceivedDate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	receivedDate := domain.NewDate(2026, time.March, 8)
	txn := domain.Transaction{
		ID:        "receipt-6",
		Date:      receivedDate,
		Amount:    decimal.NewFromInt(1200),
		Type:      domain.Income,
		AccountID: "2",
	}
	updated, err := repos.LedgerRepo.PostFutureIncomeReceipt(ctx, "f2", decimal.NewFromInt(1200), receivedDate, txn)
	require.NoError(t, err)

	assert.Equal(t, domain.FutureIncomeReceived, updated.Status)
	assert.True(t, updated.Amount.IsZero())
	require.NotNil(t, updated.ReceivedDate)
	assert.Equal(t, "2026-03-08", updated.ReceivedDate.String())

	account, err := repos.AccountRepo.FindAccountByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(16200)))
}

func TestPostFutureIncomeReceiptPartialKeepsPending(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	txn := domain.Transaction{
		ID:        "receipt-7",
		Date:      domain.NewDate(2026, time.March, 9),
		Amount:    decimal.NewFromInt(400),
		Type:      domain.Income,
		AccountID: "2",
	}
	updated, err := repos.LedgerRepo.PostFutureIncomeReceipt(ctx, "f2", decimal.NewFromInt(400), domain.NewDate(2026, time.March, 9), txn)
	require.NoError(t, err)

	assert.Equal(t, domain.FutureIncomePending, updated.Status)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(800)))
	assert.Nil(t, updated.ReceivedDate)
}

// netWorth recomputes cash plus uncollected receivables from the repos.
func netWorth(t *testing.T, repos *repositories.RepositoryProvider) decimal.Decimal {
	t.Helper()
	ctx := context.Background()

	accounts, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	receivables, err := repos.ReceivableRepo.ListReceivables(ctx)
	require.NoError(t, err)

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	for _, r := range receivables {
		if !r.IsReceived() {
			total = total.Add(r.Amount)
		}
	}
	return total
}

func TestReceiveThenSpendRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	baseline := netWorth(t, repos)

	receipt := domain.Transaction{
		ID:        "round-trip-in",
		Date:      domain.NewDate(2026, time.March, 10),
		Amount:    decimal.NewFromInt(500),
		Type:      domain.Income,
		AccountID: "1",
	}
	_, err := repos.LedgerRepo.PostReceivableReceipt(ctx, "r1", decimal.NewFromInt(500), receipt)
	require.NoError(t, err)

	// Receipt converts a receivable into cash; net worth is unchanged.
	assert.True(t, netWorth(t, repos).Equal(baseline))

	spend := domain.Transaction{
		ID:        "round-trip-out",
		Date:      domain.NewDate(2026, time.March, 11),
		Amount:    decimal.NewFromInt(500),
		Type:      domain.Expense,
		AccountID: "1",
	}
	require.NoError(t, repos.LedgerRepo.PostTransaction(ctx, spend))

	// Spending the received amount puts the account back where it started;
	// only the receivable side of net worth is down by the 500.
	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5000)))
	assert.True(t, netWorth(t, repos).Equal(baseline.Sub(decimal.NewFromInt(500))))

	receivables, err := repos.ReceivableRepo.ListReceivables(ctx)
	require.NoError(t, err)
	outstanding := decimal.Zero
	for _, r := range receivables {
		if !r.IsReceived() {
			outstanding = outstanding.Add(r.Amount)
		}
	}
	assert.True(t, outstanding.Equal(decimal.NewFromInt(2650)))
}

func TestPostTransactionSequenceBookkeeping(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	sequence := []domain.Transaction{
		{ID: "s1", Date: domain.NewDate(2026, time.March, 12), Amount: decimal.NewFromInt(1000), Type: domain.Income, AccountID: "1"},
		{ID: "s2", Date: domain.NewDate(2026, time.March, 13), Amount: decimal.NewFromInt(250), Type: domain.Expense, AccountID: "1"},
		{ID: "s3", Date: domain.NewDate(2026, time.March, 14), Amount: decimal.NewFromInt(40), Type: domain.Income, AccountID: "1"},
		{ID: "s4", Date: domain.NewDate(2026, time.March, 15), Amount: decimal.NewFromInt(15), Type: domain.Expense, AccountID: "1"},
	}
	for _, txn := range sequence {
		require.NoError(t, repos.LedgerRepo.PostTransaction(ctx, txn))
	}

	// 5000 + 1000 - 250 + 40 - 15
	account, err := repos.AccountRepo.FindAccountByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(5775)))

	txns, err := repos.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 13)
	assert.Equal(t, "s4", txns[0].ID)
}

func TestSaveReceivablePrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	receivable := domain.Receivable{
		ID:      "r-new",
		From:    "New Debtor",
		Amount:  decimal.NewFromInt(75),
		DueDate: domain.NewDate(2026, time.April, 1),
		Status:  domain.ReceivablePending,
	}
	require.NoError(t, repos.ReceivableRepo.SaveReceivable(ctx, receivable))

	receivables, err := repos.ReceivableRepo.ListReceivables(ctx)
	require.NoError(t, err)
	require.Len(t, receivables, 4)
	assert.Equal(t, "r-new", receivables[0].ID)
}

func TestDeleteAccountKeepsTransactions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	require.NoError(t, repos.AccountRepo.DeleteAccount(ctx, "3"))

	_, err := repos.AccountRepo.FindAccountByID(ctx, "3")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// t3 was posted against account 3 and stays in the log.
	txn, err := repos.TransactionRepo.FindTransactionByID(ctx, "t3")
	require.NoError(t, err)
	assert.Equal(t, "3", txn.AccountID)
}

func TestSaveAccountRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repos := kv.NewRepositoryProvider(store)

	err := repos.AccountRepo.SaveAccount(ctx, domain.Account{ID: "1", Name: "Clone"})
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
}
