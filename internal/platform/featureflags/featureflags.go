package featureflags

import (
	"context"
	"errors"
	"log/slog"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
	"github.com/invoicelab/accounting-backbone/internal/platform/ctxlog"
)

// SettingKey is the per-company setting consulted on top of the global flag.
const SettingKey = "accounting_enabled"

// Static is a fixed flag value, mainly for tests and single-tenant deployments.
type Static struct {
	Enabled bool
}

var _ portssvc.FeatureFlags = Static{}

func (s Static) IsAccountingEnabled(_ context.Context, _ string) bool {
	return s.Enabled
}

// SettingsBacked gates on the global flag first, then on the company's
// accounting_enabled setting. A company with no stored setting is disabled;
// rollout is opt-in per tenant.
type SettingsBacked struct {
	GlobalEnabled bool
	Settings      portsrepo.CompanySettingsRepository
}

var _ portssvc.FeatureFlags = (*SettingsBacked)(nil)

// NewSettingsBacked creates a settings-backed flag service.
func NewSettingsBacked(globalEnabled bool, settings portsrepo.CompanySettingsRepository) *SettingsBacked {
	return &SettingsBacked{GlobalEnabled: globalEnabled, Settings: settings}
}

func (f *SettingsBacked) IsAccountingEnabled(ctx context.Context, companyID string) bool {
	if !f.GlobalEnabled {
		return false
	}
	if companyID == "" {
		return true
	}

	value, err := f.Settings.GetSetting(ctx, companyID, SettingKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			ctxlog.FromCtx(ctx).Warn("Failed to read accounting feature setting, treating as disabled",
				slog.String("company_id", companyID),
				slog.String("error", err.Error()))
		}
		return false
	}

	switch value {
	case "YES", "yes", "true", "1":
		return true
	}
	return false
}
