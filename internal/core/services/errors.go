package services

import (
	"fmt"
	"time"
)

// EntityMissingError is raised when a company has no linked accounting entity
// or the link does not resolve to a persisted record. Fatal for the posting
// call; remediation is running accounting setup for the company.
type EntityMissingError struct {
	CompanyID   string
	CompanyName string
}

func (e *EntityMissingError) Error() string {
	return fmt.Sprintf("company %q (%s) has no accounting entity; run accounting setup to create one", e.CompanyName, e.CompanyID)
}

// PeriodClosedError is raised when the transaction date falls outside any
// OPEN reporting period. A new period must be opened before retrying.
type PeriodClosedError struct {
	EntityID string
	Date     time.Time
	Year     int
}

func (e *PeriodClosedError) Error() string {
	return fmt.Sprintf("no open reporting period covers %s (year %d) for entity %s; open the period before posting", e.Date.Format("2006-01-02"), e.Year, e.EntityID)
}

// UnbalancedTransactionError indicates a posting template produced mismatched
// debit/credit sums. This is a logic defect; the transaction is never persisted.
type UnbalancedTransactionError struct {
	Narration string
	Debits    int64
	Credits   int64
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("unbalanced transaction %q: debits %d != credits %d", e.Narration, e.Debits, e.Credits)
}
