package domain

// PeriodStatus indicates whether a reporting period accepts new transactions.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Entity represents one company's accounting book in the ledger system.
type Entity struct {
	EntityID     string `json:"entityID"`     // Primary Key (e.g., UUID)
	CompanyID    string `json:"companyID"`    // Owning company (unique)
	Name         string `json:"name"`         // Mirrors the company name at creation time
	CurrencyCode string `json:"currencyCode"` // Base currency of the book (Not Null)
	AuditFields
}

// ReportingPeriod is a calendar-year window that must be OPEN to accept postings.
type ReportingPeriod struct {
	PeriodID     string       `json:"periodID"`     // Primary Key (e.g., UUID)
	EntityID     string       `json:"entityID"`     // FK -> Entity.entityID (Not Null)
	CalendarYear int          `json:"calendarYear"` // Unique per entity
	Status       PeriodStatus `json:"status"`       // OPEN or CLOSED
	AuditFields
}

// Company is the narrow view of a company record the ledger core reads.
// The company itself is owned by the surrounding application; the core only
// consumes identifying fields and the entity link.
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	EntityID     string `json:"entityID"` // Empty until accounting setup has run
}
