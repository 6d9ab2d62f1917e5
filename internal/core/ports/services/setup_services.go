package services

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// EntitySetupSvcFacade creates the accounting book for a company. Running it
// is the remediation step the guard's EntityMissing error points at.
type EntitySetupSvcFacade interface {
	// SetupCompany creates (or returns) the company's entity and makes sure
	// the current calendar year has an OPEN reporting period. Idempotent.
	SetupCompany(ctx context.Context, company domain.Company) (*domain.Entity, error)

	// EnsureReportingPeriod opens the period for a calendar year if absent.
	EnsureReportingPeriod(ctx context.Context, entityID string, calendarYear int) error
}
