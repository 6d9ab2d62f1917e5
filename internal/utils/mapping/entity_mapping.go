package mapping

import (
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/models"
)

// ToModelEntity converts a domain entity to its DB model.
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID:     d.EntityID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		CreatedAt:    d.CreatedAt,
		LastUpdated:  d.LastUpdatedAt,
	}
}

// ToDomainEntity converts a DB entity model to its domain form.
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:     m.EntityID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdated,
		},
	}
}

// ToModelReportingPeriod converts a domain reporting period to its DB model.
func ToModelReportingPeriod(d domain.ReportingPeriod) models.ReportingPeriod {
	return models.ReportingPeriod{
		PeriodID:     d.PeriodID,
		EntityID:     d.EntityID,
		CalendarYear: d.CalendarYear,
		Status:       models.PeriodStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		LastUpdated:  d.LastUpdatedAt,
	}
}

// ToDomainReportingPeriod converts a DB reporting period model to its domain form.
func ToDomainReportingPeriod(m models.ReportingPeriod) domain.ReportingPeriod {
	return domain.ReportingPeriod{
		PeriodID:     m.PeriodID,
		EntityID:     m.EntityID,
		CalendarYear: m.CalendarYear,
		Status:       domain.PeriodStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdated,
		},
	}
}
