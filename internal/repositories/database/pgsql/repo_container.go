package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs the concrete pgsql repositories over a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntityRepo:    newPgxEntityRepository(pool),
		AccountRepo:   newPgxAccountRepository(pool),
		LedgerRepo:    newPgxLedgerRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
		CompanyRepo:   newPgxCompanyRepository(pool),
		SettingsRepo:  newPgxCompanySettingsRepository(pool),
	}
}
