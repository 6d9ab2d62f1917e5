package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
)

// accountResolver provides find-or-create resolution of ledger accounts,
// scoped to one entity by (entity_id, name).
type accountResolver struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountResolver creates a new chart-of-accounts resolver.
func NewAccountResolver(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountResolverSvcFacade {
	return &accountResolver{accountRepo: accountRepo}
}

var _ portssvc.AccountResolverSvcFacade = (*accountResolver)(nil)

// ResolveAccount looks up the account by (entity, name) and creates it on
// first use. Concurrent creators race on the uniqueness constraint; the
// loser re-fetches the winner's row instead of erroring. The account type is
// immutable after creation, so an existing row is returned as-is.
func (r *accountResolver) ResolveAccount(ctx context.Context, entity domain.Entity, name string, accountType domain.AccountType, code string) (*domain.Account, error) {
	account, err := r.accountRepo.FindAccountByName(ctx, entity.EntityID, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account %q for entity %s: %w", name, entity.EntityID, err)
	}

	now := time.Now().UTC()
	candidate := domain.Account{
		AccountID:    uuid.NewString(),
		EntityID:     entity.EntityID,
		Name:         name,
		AccountType:  accountType,
		CurrencyCode: entity.CurrencyCode,
		Code:         code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err = r.accountRepo.SaveAccount(ctx, candidate)
	if err == nil {
		r.LogInfo(ctx, "Created ledger account",
			slog.String("entity_id", entity.EntityID),
			slog.String("account_name", name),
			slog.String("account_type", string(accountType)))
		return &candidate, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, fmt.Errorf("failed to create account %q for entity %s: %w", name, entity.EntityID, err)
	}

	// A concurrent resolver inserted the same (entity, name) first.
	r.LogDebug(ctx, "Lost account creation race, re-fetching",
		slog.String("entity_id", entity.EntityID),
		slog.String("account_name", name))
	account, err = r.accountRepo.FindAccountByName(ctx, entity.EntityID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch account %q after creation race: %w", name, err)
	}
	return account, nil
}

// ResolveChartAccount resolves one fixed chart-of-accounts entry.
func (r *accountResolver) ResolveChartAccount(ctx context.Context, entity domain.Entity, chart domain.ChartAccount) (*domain.Account, error) {
	return r.ResolveAccount(ctx, entity, chart.Name, chart.Type, chart.Code)
}

// ResolveExpenseAccount resolves a category-named operating expense account.
func (r *accountResolver) ResolveExpenseAccount(ctx context.Context, entity domain.Entity, categoryName string) (*domain.Account, error) {
	if categoryName == "" {
		categoryName = "General Expenses"
	}
	return r.ResolveAccount(ctx, entity, categoryName, domain.OperatingExpense, expenseAccountCode(categoryName))
}

// expenseAccountCode maps an expense category to a 5xxx chart code.
func expenseAccountCode(categoryName string) string {
	category := strings.ToLower(categoryName)

	switch {
	case strings.Contains(category, "salary"), strings.Contains(category, "wage"):
		return "5200"
	case strings.Contains(category, "rent"):
		return "5300"
	case strings.Contains(category, "utilit"):
		return "5400"
	case strings.Contains(category, "marketing"), strings.Contains(category, "advertising"):
		return "5500"
	case strings.Contains(category, "travel"):
		return "5600"
	case strings.Contains(category, "office"), strings.Contains(category, "supplies"):
		return "5700"
	case strings.Contains(category, "insurance"):
		return "5800"
	case strings.Contains(category, "legal"), strings.Contains(category, "professional"):
		return "5900"
	}
	return "5000"
}
