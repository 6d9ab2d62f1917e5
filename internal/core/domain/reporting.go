package domain

// TrialBalanceRow holds per-account debit and credit totals in minor units.
type TrialBalanceRow struct {
	AccountID   string      `json:"accountID"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Code        string      `json:"code"`
	DebitTotal  int64       `json:"debitTotal"`
	CreditTotal int64       `json:"creditTotal"`
}

// AccountBalance holds the netted balance of a single account in minor units.
// The netting direction follows the account's normal balance side.
type AccountBalance struct {
	AccountID   string      `json:"accountID"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Code        string      `json:"code"`
	NetAmount   int64       `json:"netAmount"`
}
