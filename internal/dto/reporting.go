package dto

import "github.com/invoicelab/accounting-backbone/internal/core/domain"

// ErrorDescriptor is the structured, non-throwing validation result used by
// API contexts that prefer payloads over errors.
type ErrorDescriptor struct {
	ErrorCode   string `json:"errorCode"`
	Message     string `json:"message"`
	CompanyID   string `json:"companyID"`
	CompanyName string `json:"companyName"`
}

// TrialBalanceRowResponse is one account row of a trial balance.
type TrialBalanceRowResponse struct {
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
	Code        string `json:"code"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
}

// TrialBalanceResponse is the aggregate debits-equal-credits check.
// Error is set (and the query fields left empty) when the report could not
// be produced; reporting never propagates failures as Go errors.
type TrialBalanceResponse struct {
	Date         string                    `json:"date,omitempty"`
	Year         int                       `json:"year,omitempty"`
	Rows         []TrialBalanceRowResponse `json:"rows,omitempty"`
	TotalDebits  int64                     `json:"totalDebits"`
	TotalCredits int64                     `json:"totalCredits"`
	// Display strings carry the formatted major-unit amounts for the UI.
	TotalDebitsDisplay  string `json:"totalDebitsDisplay,omitempty"`
	TotalCreditsDisplay string `json:"totalCreditsDisplay,omitempty"`
	IsBalanced          bool   `json:"isBalanced"`
	Error               string `json:"error,omitempty"`
	Status              string `json:"status,omitempty"`
}

// AccountBalanceResponse is one netted account line of a report section.
type AccountBalanceResponse struct {
	AccountName string `json:"accountName"`
	Code        string `json:"code"`
	NetAmount   int64  `json:"netAmount"`
	Display     string `json:"display,omitempty"`
}

// BalanceSheetResponse groups netted balances into the three sections.
type BalanceSheetResponse struct {
	Date             string                   `json:"date,omitempty"`
	Assets           []AccountBalanceResponse `json:"assets,omitempty"`
	Liabilities      []AccountBalanceResponse `json:"liabilities,omitempty"`
	Equity           []AccountBalanceResponse `json:"equity,omitempty"`
	TotalAssets      int64                    `json:"totalAssets"`
	TotalLiabilities int64                    `json:"totalLiabilities"`
	TotalEquity      int64                    `json:"totalEquity"`
	Error            string                   `json:"error,omitempty"`
	Status           string                   `json:"status,omitempty"`
}

// IncomeStatementResponse lists revenues and expenses over a period.
type IncomeStatementResponse struct {
	StartDate     string                   `json:"startDate,omitempty"`
	EndDate       string                   `json:"endDate,omitempty"`
	Revenues      []AccountBalanceResponse `json:"revenues,omitempty"`
	Expenses      []AccountBalanceResponse `json:"expenses,omitempty"`
	TotalRevenue  int64                    `json:"totalRevenue"`
	TotalExpenses int64                    `json:"totalExpenses"`
	NetIncome     int64                    `json:"netIncome"`
	Error         string                   `json:"error,omitempty"`
	Status        string                   `json:"status,omitempty"`
}

// ToTrialBalanceRowResponses converts domain rows into response rows.
func ToTrialBalanceRowResponses(rows []domain.TrialBalanceRow) []TrialBalanceRowResponse {
	out := make([]TrialBalanceRowResponse, len(rows))
	for i, r := range rows {
		out[i] = TrialBalanceRowResponse{
			AccountName: r.AccountName,
			AccountType: string(r.AccountType),
			Code:        r.Code,
			Debit:       r.DebitTotal,
			Credit:      r.CreditTotal,
		}
	}
	return out
}
