package repositories

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// EntityReader defines read operations for entity and reporting-period data.
type EntityReader interface {
	// FindEntityByID retrieves an entity by its unique identifier.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// FindEntityByCompanyID retrieves the entity linked to a company.
	FindEntityByCompanyID(ctx context.Context, companyID string) (*domain.Entity, error)

	// FindReportingPeriod retrieves the period covering a calendar year.
	FindReportingPeriod(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error)
}

// EntityWriter defines write operations for entity setup.
type EntityWriter interface {
	// SaveEntity persists a new accounting entity.
	SaveEntity(ctx context.Context, entity domain.Entity) error

	// SaveReportingPeriod persists a new reporting period.
	SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error

	// LinkCompanyEntity sets the company's entity reference, only if unset.
	// Returns apperrors.ErrConflict when another setup run linked it first.
	LinkCompanyEntity(ctx context.Context, companyID string, entityID string) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces.
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
