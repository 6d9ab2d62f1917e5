package mapping

import (
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/models"
)

// ToModelAccount converts a domain account to its DB model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		EntityID:     d.EntityID,
		Name:         d.Name,
		AccountType:  models.AccountType(d.AccountType),
		CurrencyCode: d.CurrencyCode,
		Code:         d.Code,
		CreatedAt:    d.CreatedAt,
		LastUpdated:  d.LastUpdatedAt,
	}
}

// ToDomainAccount converts a DB account model to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		EntityID:     m.EntityID,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		CurrencyCode: m.CurrencyCode,
		Code:         m.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdated,
		},
	}
}
