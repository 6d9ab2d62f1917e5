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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account. The unique constraint on
// (entity_id, name) turns concurrent find-or-create races into
// ErrDuplicate, which the resolver recovers from by re-fetching.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, entity_id, name, account_type, currency_code, code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.EntityID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.CurrencyCode,
		modelAcc.Code,
		modelAcc.CreatedAt,
		modelAcc.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return apperrors.NewAppError(409, "account "+account.Name+" already exists for entity "+account.EntityID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert account "+account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, entity_id, name, account_type, currency_code, code, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var m models.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID, &m.EntityID, &m.Name, &m.AccountType, &m.CurrencyCode, &m.Code, &m.CreatedAt, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account "+accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByName retrieves an account by its (entity, name) natural key.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, entityID string, name string) (*domain.Account, error) {
	query := `
		SELECT account_id, entity_id, name, account_type, currency_code, code, created_at, last_updated_at
		FROM accounts
		WHERE entity_id = $1 AND name = $2;
	`
	var m models.Account
	err := r.pool.QueryRow(ctx, query, entityID, name).Scan(
		&m.AccountID, &m.EntityID, &m.Name, &m.AccountType, &m.CurrencyCode, &m.Code, &m.CreatedAt, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account "+name+" for entity "+entityID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
