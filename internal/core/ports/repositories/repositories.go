package repositories

// RepositoryProvider groups the repository implementations handed to the
// service container.
type RepositoryProvider struct {
	AccountRepo      AccountRepository
	TransactionRepo  TransactionRepository
	ReceivableRepo   ReceivableRepository
	FutureIncomeRepo FutureIncomeRepository
	LedgerRepo       LedgerRepository
	SnapshotRepo     SnapshotRepository
}
