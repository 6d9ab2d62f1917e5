package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Receivable       AccountType = "RECEIVABLE"
	Payable          AccountType = "PAYABLE"
	OperatingRevenue AccountType = "OPERATING_REVENUE"
	OperatingExpense AccountType = "OPERATING_EXPENSE"
	Control          AccountType = "CONTROL"
	Bank             AccountType = "BANK"
	Equity           AccountType = "EQUITY"
	CurrentAsset     AccountType = "CURRENT_ASSET"
)

// Account represents a ledger account scoped to exactly one Entity.
// (entity_id, name) uniquely identifies an account; the type is immutable
// once transactions reference it.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (e.g., UUID)
	EntityID     string      `json:"entityID"`     // FK -> Entity.entityID (Not Null)
	Name         string      `json:"name"`         // Unique per entity
	AccountType  AccountType `json:"accountType"`  // RECEIVABLE, BANK, etc.
	CurrencyCode string      `json:"currencyCode"` // Matches the entity currency
	Code         string      `json:"code"`         // Chart-of-accounts code, e.g. "1200"
	AuditFields
}

// ChartAccount describes one fixed entry of the posting chart of accounts.
type ChartAccount struct {
	Name string
	Type AccountType
	Code string
}

// Fixed chart used by the posting templates.
var (
	ChartAccountsReceivable = ChartAccount{Name: "Accounts Receivable", Type: Receivable, Code: "1200"}
	ChartSalesRevenue       = ChartAccount{Name: "Sales Revenue", Type: OperatingRevenue, Code: "4000"}
	ChartTaxPayable         = ChartAccount{Name: "Tax Payable", Type: Control, Code: "2100"}
	ChartCashAndBank        = ChartAccount{Name: "Cash and Bank", Type: Bank, Code: "1000"}
	ChartProcessingFees     = ChartAccount{Name: "Payment Processing Fees", Type: OperatingExpense, Code: "5100"}
	ChartAccountsPayable    = ChartAccount{Name: "Accounts Payable", Type: Payable, Code: "2000"}
	ChartVATReceivable      = ChartAccount{Name: "VAT Receivable", Type: CurrentAsset, Code: "1100"}
)
