package services

import (
	portsrepo "github.com/finbook-dev/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook-dev/finbook/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Receivable = NewReceivableService(repos.ReceivableRepo)
	container.FutureIncome = NewFutureIncomeService(repos.FutureIncomeRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.ReceivableRepo, repos.FutureIncomeRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.ReceivableRepo, repos.FutureIncomeRepo)
	container.View = NewViewService(container.Account, container.Transaction, container.Receivable, container.FutureIncome, container.Reporting)
	container.Snapshot = NewSnapshotService(repos.SnapshotRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade  = (*transactionService)(nil)
	_ portssvc.ReceivableSvcFacade   = (*receivableService)(nil)
	_ portssvc.FutureIncomeSvcFacade = (*futureIncomeService)(nil)
	_ portssvc.LedgerSvc             = (*ledgerService)(nil)
	_ portssvc.ReportingSvc          = (*reportingService)(nil)
	_ portssvc.ViewSvc               = (*viewService)(nil)
	_ portssvc.SnapshotSvc           = (*snapshotService)(nil)
)
