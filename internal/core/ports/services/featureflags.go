package services

import "context"

// FeatureFlags is the capability consulted before every posting and reporting
// call. Injected at construction so tests can gate deterministically instead
// of mutating process-wide state.
type FeatureFlags interface {
	// IsAccountingEnabled reports whether the accounting backbone is enabled
	// for the given company. An empty companyID checks the global flag only.
	IsAccountingEnabled(ctx context.Context, companyID string) bool
}
