package models

import "time"

// EntryType mirrors domain.EntryType for DB storage.
type EntryType string

// Transaction is the DB representation of a posted ledger transaction.
// Rows are insert-only; there is no update path.
type Transaction struct {
	TransactionID   string    `db:"transaction_id"`
	EntityID        string    `db:"entity_id"`
	TransactionType string    `db:"transaction_type"`
	Narration       string    `db:"narration"`
	TransactionDate time.Time `db:"transaction_date"`
	CurrencyCode    string    `db:"currency_code"`
	CreatedAt       time.Time `db:"created_at"`
}

// LineEntry is the DB representation of one debit or credit leg.
// Amount is minor currency units (bigint), constrained positive.
type LineEntry struct {
	LineID        string    `db:"line_id"`
	TransactionID string    `db:"transaction_id"`
	AccountID     string    `db:"account_id"`
	Amount        int64     `db:"amount"`
	EntryType     EntryType `db:"entry_type"`
}
