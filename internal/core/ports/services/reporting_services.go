package services

import (
	"context"
	"time"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// ReportingSvcFacade derives aggregate views from posted transactions.
// Reporting never returns Go errors to callers; failures come back as the
// Error field of the response so read-only UI paths degrade gracefully.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, company domain.Company) *dto.TrialBalanceResponse
	BalanceSheet(ctx context.Context, company domain.Company, asOf time.Time) *dto.BalanceSheetResponse
	IncomeStatement(ctx context.Context, company domain.Company, from, to time.Time) *dto.IncomeStatementResponse
}
