package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// entityGuard verifies a company has a valid accounting entity and an open
// reporting period before any posting is attempted.
type entityGuard struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityGuard creates a new entity/period guard.
func NewEntityGuard(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntityGuardSvcFacade {
	return &entityGuard{entityRepo: entityRepo}
}

var _ portssvc.EntityGuardSvcFacade = (*entityGuard)(nil)

// HasEntity reports whether the company carries an entity link. Pure
// predicate: no repository access.
func (g *entityGuard) HasEntity(company domain.Company) bool {
	return company.EntityID != ""
}

// EnsureEntityExists resolves the company's accounting entity. A missing or
// dangling link fails with EntityMissingError; repository failures propagate
// wrapped.
func (g *entityGuard) EnsureEntityExists(ctx context.Context, company domain.Company) (*domain.Entity, error) {
	if company.EntityID == "" {
		return nil, &EntityMissingError{CompanyID: company.CompanyID, CompanyName: company.Name}
	}

	entity, err := g.entityRepo.FindEntityByID(ctx, company.EntityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			g.LogInfo(ctx, "Company entity link does not resolve to a persisted entity",
				slog.String("company_id", company.CompanyID),
				slog.String("entity_id", company.EntityID))
			return nil, &EntityMissingError{CompanyID: company.CompanyID, CompanyName: company.Name}
		}
		return nil, fmt.Errorf("failed to resolve entity %s for company %s: %w", company.EntityID, company.CompanyID, err)
	}
	return entity, nil
}

// EnsurePeriodOpen fails unless an OPEN reporting period covers the date's
// calendar year.
func (g *entityGuard) EnsurePeriodOpen(ctx context.Context, entity domain.Entity, date time.Time) error {
	year := date.Year()

	period, err := g.entityRepo.FindReportingPeriod(ctx, entity.EntityID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &PeriodClosedError{EntityID: entity.EntityID, Date: date, Year: year}
		}
		return fmt.Errorf("failed to look up reporting period %d for entity %s: %w", year, entity.EntityID, err)
	}

	if period.Status != domain.PeriodOpen {
		return &PeriodClosedError{EntityID: entity.EntityID, Date: date, Year: year}
	}
	return nil
}

// Validate is the non-throwing variant of EnsureEntityExists for API
// contexts; nil means the company is ready for postings.
func (g *entityGuard) Validate(ctx context.Context, company domain.Company) *dto.ErrorDescriptor {
	if _, err := g.EnsureEntityExists(ctx, company); err != nil {
		return &dto.ErrorDescriptor{
			ErrorCode:   "entity_missing",
			Message:     err.Error(),
			CompanyID:   company.CompanyID,
			CompanyName: company.Name,
		}
	}
	return nil
}
