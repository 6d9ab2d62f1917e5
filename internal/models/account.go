package models

import "time"

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

// Account is the DB representation of a ledger account.
// (entity_id, name) carries a uniqueness constraint; the find-or-create
// race resolution in the resolver depends on it.
type Account struct {
	AccountID    string      `db:"account_id"`
	EntityID     string      `db:"entity_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	Code         string      `db:"code"`
	CreatedAt    time.Time   `db:"created_at"`
	LastUpdated  time.Time   `db:"last_updated_at"`
}
