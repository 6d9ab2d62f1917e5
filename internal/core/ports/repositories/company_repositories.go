package repositories

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// CompanyReader reads the narrow company view the ledger core needs.
type CompanyReader interface {
	// FindCompanyByID retrieves a company reference (name, currency, entity link).
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanySettingsRepository reads per-company key/value settings.
type CompanySettingsRepository interface {
	// GetSetting returns the raw setting value, or apperrors.ErrNotFound.
	GetSetting(ctx context.Context, companyID string, key string) (string, error)
}
