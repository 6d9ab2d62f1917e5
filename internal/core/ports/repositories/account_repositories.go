package repositories

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// AccountReader defines read operations for ledger account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves an account by its (entity, name) natural key.
	FindAccountByName(ctx context.Context, entityID string, name string) (*domain.Account, error)
}

// AccountWriter defines write operations for ledger account data.
type AccountWriter interface {
	// SaveAccount persists a new account. The (entity_id, name) uniqueness
	// constraint surfaces as apperrors.ErrDuplicate when a concurrent
	// creator won the race.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
