package domain

import "time"

// EntryType indicates whether a line entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// TransactionType classifies the business event behind a ledger transaction.
type TransactionType string

const (
	ClientInvoice   TransactionType = "CS" // Client invoice
	ClientReceipt   TransactionType = "RC" // Client receipt
	JournalEntry    TransactionType = "JN" // Generic journal entry
	CreditNote      TransactionType = "CN" // Credit note
	CashPurchase    TransactionType = "CP" // Cash purchase / expense
	SupplierBill    TransactionType = "BL" // Supplier bill
	SupplierPayment TransactionType = "PY" // Supplier payment
)

// LineEntry is one debit or credit leg within a Transaction.
// Amounts are integers in minor currency units (cents); always positive.
type LineEntry struct {
	LineID        string    `json:"lineID"`        // Primary Key (e.g., UUID)
	TransactionID string    `json:"transactionID"` // FK -> Transaction.transactionID (Not Null)
	AccountID     string    `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount        int64     `json:"amount"`        // Minor units, > 0
	EntryType     EntryType `json:"entryType"`     // DEBIT or CREDIT (Not Null)
}

// Transaction is a balanced, dated, narrated ledger entry belonging to one
// Entity. Immutable after creation; corrections happen via offsetting entries.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (e.g., UUID)
	EntityID        string          `json:"entityID"`      // FK -> Entity.entityID (Not Null)
	TransactionType TransactionType `json:"transactionType"`
	Narration       string          `json:"narration"` // References the source document
	TransactionDate time.Time       `json:"transactionDate"`
	CurrencyCode    string          `json:"currencyCode"`
	Lines           []LineEntry     `json:"lines"`
	AuditFields
}

// DebitTotal sums the debit legs in minor units.
func (t *Transaction) DebitTotal() int64 {
	var total int64
	for _, l := range t.Lines {
		if l.EntryType == Debit {
			total += l.Amount
		}
	}
	return total
}

// CreditTotal sums the credit legs in minor units.
func (t *Transaction) CreditTotal() int64 {
	var total int64
	for _, l := range t.Lines {
		if l.EntryType == Credit {
			total += l.Amount
		}
	}
	return total
}

// Balanced reports whether the accounting identity holds for this transaction.
func (t *Transaction) Balanced() bool {
	return t.DebitTotal() == t.CreditTotal()
}
