package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
	"github.com/invoicelab/accounting-backbone/internal/dto"
	"github.com/invoicelab/accounting-backbone/internal/utils"
)

// FeatureDisabledMessage is the payload returned by every reporting call
// while the accounting backbone is switched off.
const FeatureDisabledMessage = "Accounting backbone feature is disabled"

// displayExponent renders minor units with two decimal places.
const displayExponent = 2

// reportingService derives aggregate views from posted transactions. It is
// read-only and never returns Go errors: failures come back in the response
// payload so UI paths degrade gracefully.
type reportingService struct {
	BaseService
	flags         portssvc.FeatureFlags
	guard         portssvc.EntityGuardSvcFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting query service.
func NewReportingService(flags portssvc.FeatureFlags, guard portssvc.EntityGuardSvcFacade, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		flags:         flags,
		guard:         guard,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// resolveEntity applies the feature gate and entity lookup shared by all
// reports. A non-nil errResp means the report should be returned as-is.
func (s *reportingService) resolveEntity(ctx context.Context, company domain.Company) (*domain.Entity, string, string) {
	if !s.flags.IsAccountingEnabled(ctx, company.CompanyID) {
		return nil, FeatureDisabledMessage, "disabled"
	}

	entity, err := s.guard.EnsureEntityExists(ctx, company)
	if err != nil {
		s.LogInfo(ctx, "Reporting requested for company without accounting entity",
			slog.String("company_id", company.CompanyID))
		return nil, err.Error(), "entity_error"
	}
	return entity, "", ""
}

// TrialBalance sums all debit and credit line entries for the company's
// entity as of now. A nonzero imbalance indicates a builder or persistence
// defect and is surfaced, never corrected.
func (s *reportingService) TrialBalance(ctx context.Context, company domain.Company) *dto.TrialBalanceResponse {
	entity, errMsg, status := s.resolveEntity(ctx, company)
	if entity == nil {
		return &dto.TrialBalanceResponse{Error: errMsg, Status: status}
	}

	asOf := time.Now().UTC()
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, entity.EntityID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("entity_id", entity.EntityID))
		return &dto.TrialBalanceResponse{Error: "failed to retrieve trial balance data", Status: "query_error"}
	}

	var totalDebits, totalCredits int64
	for _, row := range rows {
		totalDebits += row.DebitTotal
		totalCredits += row.CreditTotal
	}

	resp := &dto.TrialBalanceResponse{
		Date:                asOf.Format("2006-01-02"),
		Year:                asOf.Year(),
		Rows:                dto.ToTrialBalanceRowResponses(rows),
		TotalDebits:         totalDebits,
		TotalCredits:        totalCredits,
		TotalDebitsDisplay:  utils.FormatMinorUnits(totalDebits, displayExponent),
		TotalCreditsDisplay: utils.FormatMinorUnits(totalCredits, displayExponent),
		IsBalanced:          totalDebits == totalCredits,
	}

	if !resp.IsBalanced {
		s.LogError(ctx, &UnbalancedTransactionError{Narration: "trial balance", Debits: totalDebits, Credits: totalCredits},
			"Trial balance does not balance; ledger data is inconsistent",
			slog.String("entity_id", entity.EntityID),
			slog.Int64("total_debits", totalDebits),
			slog.Int64("total_credits", totalCredits))
	}

	s.LogInfo(ctx, "Trial balance report generated",
		slog.String("entity_id", entity.EntityID),
		slog.Int("row_count", len(rows)),
		slog.Bool("is_balanced", resp.IsBalanced))
	return resp
}

// BalanceSheet groups netted account balances into assets, liabilities, and
// equity as of a date.
func (s *reportingService) BalanceSheet(ctx context.Context, company domain.Company, asOf time.Time) *dto.BalanceSheetResponse {
	entity, errMsg, status := s.resolveEntity(ctx, company)
	if entity == nil {
		return &dto.BalanceSheetResponse{Error: errMsg, Status: status}
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, entity.EntityID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("entity_id", entity.EntityID))
		return &dto.BalanceSheetResponse{Error: "failed to retrieve balance sheet data", Status: "query_error"}
	}

	resp := &dto.BalanceSheetResponse{
		Date:        asOf.Format("2006-01-02"),
		Assets:      toBalanceResponses(assets),
		Liabilities: toBalanceResponses(liabilities),
		Equity:      toBalanceResponses(equity),
	}
	resp.TotalAssets = sumBalances(assets)
	resp.TotalLiabilities = sumBalances(liabilities)
	resp.TotalEquity = sumBalances(equity)

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("entity_id", entity.EntityID),
		slog.Int("asset_accounts", len(assets)),
		slog.Int("liability_accounts", len(liabilities)),
		slog.Int("equity_accounts", len(equity)))
	return resp
}

// IncomeStatement lists netted revenues and expenses over a period.
func (s *reportingService) IncomeStatement(ctx context.Context, company domain.Company, from, to time.Time) *dto.IncomeStatementResponse {
	entity, errMsg, status := s.resolveEntity(ctx, company)
	if entity == nil {
		return &dto.IncomeStatementResponse{Error: errMsg, Status: status}
	}

	revenues, expenses, err := s.reportingRepo.GetIncomeStatementData(ctx, entity.EntityID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data",
			slog.String("entity_id", entity.EntityID))
		return &dto.IncomeStatementResponse{Error: "failed to retrieve income statement data", Status: "query_error"}
	}

	resp := &dto.IncomeStatementResponse{
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.Format("2006-01-02"),
		Revenues:  toBalanceResponses(revenues),
		Expenses:  toBalanceResponses(expenses),
	}
	resp.TotalRevenue = sumBalances(revenues)
	resp.TotalExpenses = sumBalances(expenses)
	resp.NetIncome = resp.TotalRevenue - resp.TotalExpenses

	s.LogInfo(ctx, "Income statement report generated",
		slog.String("entity_id", entity.EntityID),
		slog.Int("revenue_accounts", len(revenues)),
		slog.Int("expense_accounts", len(expenses)))
	return resp
}

func toBalanceResponses(balances []domain.AccountBalance) []dto.AccountBalanceResponse {
	out := make([]dto.AccountBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = dto.AccountBalanceResponse{
			AccountName: b.AccountName,
			Code:        b.Code,
			NetAmount:   b.NetAmount,
			Display:     utils.FormatMinorUnits(b.NetAmount, displayExponent),
		}
	}
	return out
}

func sumBalances(balances []domain.AccountBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.NetAmount
	}
	return total
}
