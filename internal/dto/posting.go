package dto

import "time"

// Posting inputs carry only the source-document fields the ledger core reads,
// decoupling it from the full document shape owned by the invoicing and
// payments modules. All amounts are integers in minor currency units.

// InvoicePostingInput describes an invoice that transitioned to SENT.
type InvoicePostingInput struct {
	InvoiceID           string    `json:"invoiceID" validate:"required"`
	InvoiceNumber       string    `json:"invoiceNumber" validate:"required"`
	CustomerName        string    `json:"customerName" validate:"required"`
	Total               int64     `json:"total" validate:"gt=0"`
	SubTotal            int64     `json:"subTotal" validate:"gt=0"`
	Tax                 int64     `json:"tax" validate:"gte=0"`
	InvoiceDate         time.Time `json:"invoiceDate"` // Zero value falls back to now
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
}

// PaymentPostingInput describes a completed customer payment.
type PaymentPostingInput struct {
	PaymentID           string    `json:"paymentID" validate:"required"`
	PaymentNumber       string    `json:"paymentNumber" validate:"required"`
	CustomerName        string    `json:"customerName" validate:"required"`
	Amount              int64     `json:"amount" validate:"gt=0"`
	PaymentDate         time.Time `json:"paymentDate"`
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
	// FeeLedgerTransactionID is the separate back-reference for the gateway
	// fee posting, so fee postings are at-most-once too.
	FeeLedgerTransactionID *string `json:"feeLedgerTransactionID"`
}

// CreditNotePostingInput describes an issued credit note reversing an invoice.
type CreditNotePostingInput struct {
	CreditNoteID        string    `json:"creditNoteID" validate:"required"`
	CreditNoteNumber    string    `json:"creditNoteNumber" validate:"required"`
	CustomerName        string    `json:"customerName" validate:"required"`
	Total               int64     `json:"total" validate:"gt=0"`
	SubTotal            int64     `json:"subTotal" validate:"gt=0"`
	Tax                 int64     `json:"tax" validate:"gte=0"`
	CreditNoteDate      time.Time `json:"creditNoteDate"`
	InvoiceNumber       string    `json:"invoiceNumber"` // Original invoice, if linked
	InvoiceTxnID        string    `json:"invoiceTxnID"`  // Original ledger transaction, if posted
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
}

// ExpensePostingInput describes a recorded company expense.
type ExpensePostingInput struct {
	ExpenseID           string    `json:"expenseID" validate:"required"`
	CategoryName        string    `json:"categoryName"` // Empty maps to "General Expenses"
	Notes               string    `json:"notes"`
	Amount              int64     `json:"amount" validate:"gt=0"`
	ExpenseDate         time.Time `json:"expenseDate"`
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
}

// BillPostingInput describes a received supplier bill.
type BillPostingInput struct {
	BillID              string    `json:"billID" validate:"required"`
	BillNumber          string    `json:"billNumber" validate:"required"`
	SupplierName        string    `json:"supplierName" validate:"required"`
	Total               int64     `json:"total" validate:"gt=0"`
	SubTotal            int64     `json:"subTotal" validate:"gt=0"`
	Tax                 int64     `json:"tax" validate:"gte=0"`
	BillDate            time.Time `json:"billDate"`
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
}

// BillPaymentPostingInput describes a payment made against a supplier bill.
type BillPaymentPostingInput struct {
	BillPaymentID       string    `json:"billPaymentID" validate:"required"`
	PaymentNumber       string    `json:"paymentNumber" validate:"required"`
	SupplierName        string    `json:"supplierName"` // Falls back to "Supplier"
	Amount              int64     `json:"amount" validate:"gt=0"`
	PaymentDate         time.Time `json:"paymentDate"`
	LedgerTransactionID *string   `json:"ledgerTransactionID"`
}
