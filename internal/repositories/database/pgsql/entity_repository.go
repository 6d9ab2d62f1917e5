package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	"github.com/invoicelab/accounting-backbone/internal/models"
	"github.com/invoicelab/accounting-backbone/internal/utils/mapping"
)

type PgxEntityRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntityRepository creates a new repository for entity and period data.
func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{pool: pool}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

// SaveEntity inserts a new accounting entity. The unique constraint on
// company_id makes concurrent setup runs surface as ErrDuplicate.
func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	modelEntity := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (entity_id, company_id, name, currency_code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		modelEntity.EntityID,
		modelEntity.CompanyID,
		modelEntity.Name,
		modelEntity.CurrencyCode,
		modelEntity.CreatedAt,
		modelEntity.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.NewAppError(409, "entity already exists for company "+entity.CompanyID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert entity "+entity.EntityID, err)
	}
	return nil
}

// FindEntityByID retrieves an entity by its unique identifier.
func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `
		SELECT entity_id, company_id, name, currency_code, created_at, last_updated_at
		FROM entities
		WHERE entity_id = $1;
	`
	var m models.Entity
	err := r.pool.QueryRow(ctx, query, entityID).Scan(
		&m.EntityID, &m.CompanyID, &m.Name, &m.CurrencyCode, &m.CreatedAt, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity "+entityID, err)
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

// FindEntityByCompanyID retrieves the entity linked to a company.
func (r *PgxEntityRepository) FindEntityByCompanyID(ctx context.Context, companyID string) (*domain.Entity, error) {
	query := `
		SELECT entity_id, company_id, name, currency_code, created_at, last_updated_at
		FROM entities
		WHERE company_id = $1;
	`
	var m models.Entity
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&m.EntityID, &m.CompanyID, &m.Name, &m.CurrencyCode, &m.CreatedAt, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity for company "+companyID, err)
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

// SaveReportingPeriod inserts a new reporting period. The unique constraint
// on (entity_id, calendar_year) surfaces races as ErrDuplicate.
func (r *PgxEntityRepository) SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error {
	modelPeriod := mapping.ToModelReportingPeriod(period)
	query := `
		INSERT INTO reporting_periods (period_id, entity_id, calendar_year, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		modelPeriod.PeriodID,
		modelPeriod.EntityID,
		modelPeriod.CalendarYear,
		modelPeriod.Status,
		modelPeriod.CreatedAt,
		modelPeriod.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.NewAppError(409, "reporting period already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert reporting period "+period.PeriodID, err)
	}
	return nil
}

// FindReportingPeriod retrieves the period covering a calendar year.
func (r *PgxEntityRepository) FindReportingPeriod(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error) {
	query := `
		SELECT period_id, entity_id, calendar_year, status, created_at, last_updated_at
		FROM reporting_periods
		WHERE entity_id = $1 AND calendar_year = $2;
	`
	var m models.ReportingPeriod
	err := r.pool.QueryRow(ctx, query, entityID, calendarYear).Scan(
		&m.PeriodID, &m.EntityID, &m.CalendarYear, &m.Status, &m.CreatedAt, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reporting period", err)
	}
	period := mapping.ToDomainReportingPeriod(m)
	return &period, nil
}

// LinkCompanyEntity sets the company's entity reference only while it is
// still null. Zero rows affected means another setup run linked first.
func (r *PgxEntityRepository) LinkCompanyEntity(ctx context.Context, companyID string, entityID string) error {
	query := `
		UPDATE companies
		SET entity_id = $1, last_updated_at = NOW()
		WHERE company_id = $2 AND entity_id IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, entityID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link entity to company "+companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "company "+companyID+" is already linked to an entity", apperrors.ErrConflict)
	}
	return nil
}
