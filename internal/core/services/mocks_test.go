package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// MockEntityRepository is a mock type for the EntityRepositoryFacade interface
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindEntityByCompanyID(ctx context.Context, companyID string) (*domain.Entity, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindReportingPeriod(ctx context.Context, entityID string, calendarYear int) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, entityID, calendarYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEntityRepository) SaveReportingPeriod(ctx context.Context, period domain.ReportingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockEntityRepository) LinkCompanyEntity(ctx context.Context, companyID string, entityID string) error {
	args := m.Called(ctx, companyID, entityID)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, entityID string, name string) (*domain.Account, error) {
	args := m.Called(ctx, entityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetDocumentTransactionID(ctx context.Context, doc domain.DocumentRef) (*string, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockLedgerRepository) SavePostedTransaction(ctx context.Context, txn domain.Transaction, doc domain.DocumentRef) error {
	args := m.Called(ctx, txn, doc)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, entityID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, entityID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetBalanceSheetData(ctx context.Context, entityID string, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error) {
	args := m.Called(ctx, entityID, asOf)
	get := func(i int) []domain.AccountBalance {
		if args.Get(i) == nil {
			return nil
		}
		return args.Get(i).([]domain.AccountBalance)
	}
	return get(0), get(1), get(2), args.Error(3)
}

func (m *MockReportingRepository) GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error) {
	args := m.Called(ctx, entityID, from, to)
	get := func(i int) []domain.AccountBalance {
		if args.Get(i) == nil {
			return nil
		}
		return args.Get(i).([]domain.AccountBalance)
	}
	return get(0), get(1), args.Error(2)
}
