package mapping

import (
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/models"
)

// ToModelTransaction converts a domain transaction (header only) to its DB model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		EntityID:        d.EntityID,
		TransactionType: string(d.TransactionType),
		Narration:       d.Narration,
		TransactionDate: d.TransactionDate,
		CurrencyCode:    d.CurrencyCode,
		CreatedAt:       d.CreatedAt,
	}
}

// ToModelLineEntry converts a domain line entry to its DB model.
func ToModelLineEntry(d domain.LineEntry) models.LineEntry {
	return models.LineEntry{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		EntryType:     models.EntryType(d.EntryType),
	}
}

// ToDomainLineEntry converts a DB line entry model to its domain form.
func ToDomainLineEntry(m models.LineEntry) domain.LineEntry {
	return domain.LineEntry{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		EntryType:     domain.EntryType(m.EntryType),
	}
}
