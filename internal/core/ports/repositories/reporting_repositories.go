package repositories

import (
	"context"
	"time"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data.
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
	GetTrialBalanceData(ctx context.Context, entityID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetBalanceSheetData retrieves netted asset, liability, and equity balances as of a date.
	GetBalanceSheetData(ctx context.Context, entityID string, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error)

	// GetIncomeStatementData retrieves netted revenue and expense balances for a period.
	GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error)
}
