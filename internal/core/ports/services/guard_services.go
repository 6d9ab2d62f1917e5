package services

import (
	"context"
	"time"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// EntityGuardSvcFacade verifies a company is ready for ledger postings.
type EntityGuardSvcFacade interface {
	// HasEntity is a pure predicate with no side effects, for conditional
	// UI and feature checks.
	HasEntity(company domain.Company) bool

	// EnsureEntityExists resolves the company's accounting entity or fails
	// with a services.EntityMissingError naming the company.
	EnsureEntityExists(ctx context.Context, company domain.Company) (*domain.Entity, error)

	// EnsurePeriodOpen fails with a services.PeriodClosedError unless an
	// OPEN reporting period covers the date.
	EnsurePeriodOpen(ctx context.Context, entity domain.Entity, date time.Time) error

	// Validate is the non-throwing variant for API contexts; nil means valid.
	Validate(ctx context.Context, company domain.Company) *dto.ErrorDescriptor
}
