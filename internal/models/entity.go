package models

import "time"

// PeriodStatus mirrors domain.PeriodStatus for DB storage.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Entity is the DB representation of one company's accounting book.
type Entity struct {
	EntityID     string    `db:"entity_id"`
	CompanyID    string    `db:"company_id"`
	Name         string    `db:"name"`
	CurrencyCode string    `db:"currency_code"`
	CreatedAt    time.Time `db:"created_at"`
	LastUpdated  time.Time `db:"last_updated_at"`
}

// ReportingPeriod is the DB representation of a calendar-year posting window.
type ReportingPeriod struct {
	PeriodID     string       `db:"period_id"`
	EntityID     string       `db:"entity_id"`
	CalendarYear int          `db:"calendar_year"`
	Status       PeriodStatus `db:"status"`
	CreatedAt    time.Time    `db:"created_at"`
	LastUpdated  time.Time    `db:"last_updated_at"`
}
