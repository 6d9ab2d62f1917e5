package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
)

// PgxCompanyRepository reads the narrow company view owned by the
// surrounding application. The ledger core never writes company rows except
// for the entity link, which lives in the entity repository.
type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

// newPgxCompanyRepository creates a new read-only company repository.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyReader {
	return &PgxCompanyRepository{pool: pool}
}

var _ portsrepo.CompanyReader = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company reference with its entity link.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, currency_code, COALESCE(entity_id, '')
		FROM companies
		WHERE company_id = $1;
	`
	var c domain.Company
	err := r.pool.QueryRow(ctx, query, companyID).Scan(&c.CompanyID, &c.Name, &c.CurrencyCode, &c.EntityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company "+companyID, err)
	}
	return &c, nil
}

// PgxCompanySettingsRepository reads per-company key/value settings.
type PgxCompanySettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxCompanySettingsRepository creates a new settings repository.
func newPgxCompanySettingsRepository(pool *pgxpool.Pool) portsrepo.CompanySettingsRepository {
	return &PgxCompanySettingsRepository{pool: pool}
}

var _ portsrepo.CompanySettingsRepository = (*PgxCompanySettingsRepository)(nil)

// GetSetting returns the raw setting value, or apperrors.ErrNotFound.
func (r *PgxCompanySettingsRepository) GetSetting(ctx context.Context, companyID string, key string) (string, error) {
	query := `
		SELECT value
		FROM company_settings
		WHERE company_id = $1 AND key = $2;
	`
	var value string
	err := r.pool.QueryRow(ctx, query, companyID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read setting "+key+" for company "+companyID, err)
	}
	return value, nil
}
