package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at wiring time.
type RepositoryProvider struct {
	EntityRepo    EntityRepositoryFacade
	AccountRepo   AccountRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	ReportingRepo ReportingRepository
	CompanyRepo   CompanyReader
	SettingsRepo  CompanySettingsRepository
}
