package services

// ServiceContainer holds all service facades for dependency injection into
// the HTTP handlers.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Transaction  TransactionSvcFacade
	Ledger       LedgerSvc
	Receivable   ReceivableSvcFacade
	FutureIncome FutureIncomeSvcFacade
	Reporting    ReportingSvc
	View         ViewSvc
	Snapshot     SnapshotSvc
}
