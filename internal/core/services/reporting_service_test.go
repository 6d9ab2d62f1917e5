package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
	"github.com/invoicelab/accounting-backbone/internal/core/services"
	"github.com/invoicelab/accounting-backbone/internal/platform/featureflags"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEntityRepo    *MockEntityRepository
	mockReportingRepo *MockReportingRepository
	reporting         portssvc.ReportingSvcFacade

	entity  domain.Entity
	company domain.Company
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.mockReportingRepo = new(MockReportingRepository)

	guard := services.NewEntityGuard(suite.mockEntityRepo)
	suite.reporting = services.NewReportingService(featureflags.Static{Enabled: true}, guard, suite.mockReportingRepo)

	suite.entity = domain.Entity{
		EntityID:     uuid.NewString(),
		CompanyID:    uuid.NewString(),
		CurrencyCode: "EUR",
	}
	suite.company = domain.Company{
		CompanyID: suite.entity.CompanyID,
		Name:      "Acme Ltd",
		EntityID:  suite.entity.EntityID,
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_FeatureDisabled() {
	guard := services.NewEntityGuard(suite.mockEntityRepo)
	disabled := services.NewReportingService(featureflags.Static{Enabled: false}, guard, suite.mockReportingRepo)

	resp := disabled.TrialBalance(context.Background(), suite.company)

	suite.Require().NotNil(resp)
	suite.Equal(services.FeatureDisabledMessage, resp.Error)
	suite.Equal("disabled", resp.Status)
	suite.Empty(resp.Rows)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTrialBalanceData")
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_EntityMissing() {
	company := domain.Company{CompanyID: "c1", Name: "Acme Ltd"} // no entity link

	resp := suite.reporting.TrialBalance(context.Background(), company)

	suite.Require().NotNil(resp)
	suite.Equal("entity_error", resp.Status)
	suite.Contains(resp.Error, "run accounting setup")
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTrialBalanceData")
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_BalancedTotals() {
	ctx := context.Background()
	suite.mockEntityRepo.On("FindEntityByID", ctx, suite.entity.EntityID).
		Return(&suite.entity, nil).Once()

	rows := []domain.TrialBalanceRow{
		{AccountName: "Accounts Receivable", AccountType: domain.Receivable, Code: "1200", DebitTotal: 12000, CreditTotal: 10000},
		{AccountName: "Sales Revenue", AccountType: domain.OperatingRevenue, Code: "4000", DebitTotal: 0, CreditTotal: 10000},
		{AccountName: "Tax Payable", AccountType: domain.Control, Code: "2100", DebitTotal: 0, CreditTotal: 2000},
		{AccountName: "Cash and Bank", AccountType: domain.Bank, Code: "1000", DebitTotal: 10000, CreditTotal: 0},
	}
	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, suite.entity.EntityID, mock.AnythingOfType("time.Time")).
		Return(rows, nil).Once()

	resp := suite.reporting.TrialBalance(ctx, suite.company)

	suite.Require().NotNil(resp)
	suite.Empty(resp.Error)
	suite.Len(resp.Rows, 4)
	suite.Equal(int64(22000), resp.TotalDebits)
	suite.Equal(int64(22000), resp.TotalCredits)
	suite.True(resp.IsBalanced)
	suite.Equal("220.00", resp.TotalDebitsDisplay)
	suite.Equal("220.00", resp.TotalCreditsDisplay)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ImbalanceSurfaced() {
	ctx := context.Background()
	suite.mockEntityRepo.On("FindEntityByID", ctx, suite.entity.EntityID).
		Return(&suite.entity, nil).Once()

	rows := []domain.TrialBalanceRow{
		{AccountName: "Accounts Receivable", Code: "1200", DebitTotal: 5000},
		{AccountName: "Sales Revenue", Code: "4000", CreditTotal: 4000},
	}
	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, suite.entity.EntityID, mock.AnythingOfType("time.Time")).
		Return(rows, nil).Once()

	resp := suite.reporting.TrialBalance(ctx, suite.company)

	suite.Require().NotNil(resp)
	suite.False(resp.IsBalanced)
	suite.Equal(int64(5000), resp.TotalDebits)
	suite.Equal(int64(4000), resp.TotalCredits)
	// The imbalance is reported as data, not hidden behind an error
	suite.Empty(resp.Error)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	asOf := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockEntityRepo.On("FindEntityByID", ctx, suite.entity.EntityID).
		Return(&suite.entity, nil).Once()

	assets := []domain.AccountBalance{
		{AccountName: "Cash and Bank", Code: "1000", NetAmount: 8000},
		{AccountName: "Accounts Receivable", Code: "1200", NetAmount: 2000},
	}
	liabilities := []domain.AccountBalance{
		{AccountName: "Tax Payable", Code: "2100", NetAmount: 2000},
	}
	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, suite.entity.EntityID, asOf).
		Return(assets, liabilities, nil, nil).Once()

	resp := suite.reporting.BalanceSheet(ctx, suite.company, asOf)

	suite.Require().NotNil(resp)
	suite.Empty(resp.Error)
	suite.Equal("2025-12-31", resp.Date)
	suite.Equal(int64(10000), resp.TotalAssets)
	suite.Equal(int64(2000), resp.TotalLiabilities)
	suite.Equal(int64(0), resp.TotalEquity)
	suite.Equal("80.00", resp.Assets[0].Display)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockEntityRepo.On("FindEntityByID", ctx, suite.entity.EntityID).
		Return(&suite.entity, nil).Once()

	revenues := []domain.AccountBalance{
		{AccountName: "Sales Revenue", Code: "4000", NetAmount: 50000},
	}
	expenses := []domain.AccountBalance{
		{AccountName: "Rent", Code: "5300", NetAmount: 12000},
		{AccountName: "Payment Processing Fees", Code: "5100", NetAmount: 500},
	}
	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, suite.entity.EntityID, from, to).
		Return(revenues, expenses, nil).Once()

	resp := suite.reporting.IncomeStatement(ctx, suite.company, from, to)

	suite.Require().NotNil(resp)
	suite.Empty(resp.Error)
	suite.Equal(int64(50000), resp.TotalRevenue)
	suite.Equal(int64(12500), resp.TotalExpenses)
	suite.Equal(int64(37500), resp.NetIncome)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
