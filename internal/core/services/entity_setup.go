package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
)

// entitySetupService creates a company's accounting book: the entity record,
// the company link, and the current year's OPEN reporting period.
type entitySetupService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntitySetupService creates a new entity setup service.
func NewEntitySetupService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySetupSvcFacade {
	return &entitySetupService{entityRepo: entityRepo}
}

var _ portssvc.EntitySetupSvcFacade = (*entitySetupService)(nil)

// SetupCompany is idempotent: an already-linked company gets its existing
// entity back (with the current period ensured). Concurrent setup runs race
// on the company link; the loser adopts the winner's entity.
func (s *entitySetupService) SetupCompany(ctx context.Context, company domain.Company) (*domain.Entity, error) {
	currentYear := time.Now().UTC().Year()

	if company.EntityID != "" {
		entity, err := s.entityRepo.FindEntityByID(ctx, company.EntityID)
		if err != nil {
			return nil, fmt.Errorf("company %s links to entity %s which could not be loaded: %w", company.CompanyID, company.EntityID, err)
		}
		if err := s.EnsureReportingPeriod(ctx, entity.EntityID, currentYear); err != nil {
			return nil, err
		}
		return entity, nil
	}

	now := time.Now().UTC()
	entity := domain.Entity{
		EntityID:     uuid.NewString(),
		CompanyID:    company.CompanyID,
		Name:         company.Name,
		CurrencyCode: company.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another setup run created the entity for this company first.
			return s.adoptExistingEntity(ctx, company, currentYear)
		}
		return nil, fmt.Errorf("failed to create entity for company %s: %w", company.CompanyID, err)
	}

	if err := s.entityRepo.LinkCompanyEntity(ctx, company.CompanyID, entity.EntityID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return s.adoptExistingEntity(ctx, company, currentYear)
		}
		return nil, fmt.Errorf("failed to link entity %s to company %s: %w", entity.EntityID, company.CompanyID, err)
	}

	if err := s.EnsureReportingPeriod(ctx, entity.EntityID, currentYear); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Created accounting entity for company",
		slog.String("company_id", company.CompanyID),
		slog.String("entity_id", entity.EntityID))
	return &entity, nil
}

// adoptExistingEntity re-reads the entity a concurrent setup run linked.
func (s *entitySetupService) adoptExistingEntity(ctx context.Context, company domain.Company, currentYear int) (*domain.Entity, error) {
	entity, err := s.entityRepo.FindEntityByCompanyID(ctx, company.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity after concurrent setup for company %s: %w", company.CompanyID, err)
	}
	if err := s.EnsureReportingPeriod(ctx, entity.EntityID, currentYear); err != nil {
		return nil, err
	}
	return entity, nil
}

// EnsureReportingPeriod opens the calendar-year period if absent. Losing a
// creation race against another process is treated as success.
func (s *entitySetupService) EnsureReportingPeriod(ctx context.Context, entityID string, calendarYear int) error {
	_, err := s.entityRepo.FindReportingPeriod(ctx, entityID, calendarYear)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up reporting period %d for entity %s: %w", calendarYear, entityID, err)
	}

	now := time.Now().UTC()
	period := domain.ReportingPeriod{
		PeriodID:     uuid.NewString(),
		EntityID:     entityID,
		CalendarYear: calendarYear,
		Status:       domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.entityRepo.SaveReportingPeriod(ctx, period); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create reporting period %d for entity %s: %w", calendarYear, entityID, err)
	}

	s.LogInfo(ctx, "Opened reporting period",
		slog.String("entity_id", entityID),
		slog.Int("calendar_year", calendarYear))
	return nil
}
