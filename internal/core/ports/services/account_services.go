package services

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// AccountResolverSvcFacade finds-or-creates ledger accounts for an entity.
type AccountResolverSvcFacade interface {
	// ResolveAccount looks an account up by (entity, name), creating it with
	// the given type and code on first use. Safe under concurrent invocation.
	ResolveAccount(ctx context.Context, entity domain.Entity, name string, accountType domain.AccountType, code string) (*domain.Account, error)

	// ResolveChartAccount resolves one fixed chart-of-accounts entry.
	ResolveChartAccount(ctx context.Context, entity domain.Entity, chart domain.ChartAccount) (*domain.Account, error)

	// ResolveExpenseAccount resolves a category-named operating expense
	// account, mapping the category to a 5xxx account code.
	ResolveExpenseAccount(ctx context.Context, entity domain.Entity, categoryName string) (*domain.Account, error)
}
