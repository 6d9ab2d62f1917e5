package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for report aggregations.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData sums debit and credit legs per account up to the asOf
// date. Accounts with no activity are omitted.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, entityID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type, a.code,
			COALESCE(SUM(CASE WHEN l.entry_type = 'DEBIT' THEN l.amount ELSE 0 END), 0) AS debit_total,
			COALESCE(SUM(CASE WHEN l.entry_type = 'CREDIT' THEN l.amount ELSE 0 END), 0) AS credit_total
		FROM accounts a
		JOIN ledger_lines l ON l.account_id = a.account_id
		JOIN ledger_transactions t ON t.transaction_id = l.transaction_id
		WHERE a.entity_id = $1 AND t.transaction_date <= $2
		GROUP BY a.account_id, a.name, a.account_type, a.code
		ORDER BY a.code, a.name;
	`
	rows, err := r.pool.Query(ctx, query, entityID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for entity "+entityID, err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountName, &row.AccountType, &row.Code, &row.DebitTotal, &row.CreditTotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate trial balance rows", err)
	}
	return result, nil
}

// netted balance query. Debit-normal account types net debits minus credits;
// the rest net credits minus debits.
const balanceQuery = `
	SELECT a.account_id, a.name, a.account_type, a.code,
		COALESCE(SUM(CASE
			WHEN a.account_type = ANY($3) THEN
				CASE WHEN l.entry_type = 'DEBIT' THEN l.amount ELSE -l.amount END
			ELSE
				CASE WHEN l.entry_type = 'CREDIT' THEN l.amount ELSE -l.amount END
		END), 0) AS net_amount
	FROM accounts a
	JOIN ledger_lines l ON l.account_id = a.account_id
	JOIN ledger_transactions t ON t.transaction_id = l.transaction_id
	WHERE a.entity_id = $1
		AND a.account_type = ANY($2)
		AND t.transaction_date >= $4 AND t.transaction_date <= $5
	GROUP BY a.account_id, a.name, a.account_type, a.code
	ORDER BY a.code, a.name;
`

var debitNormalTypes = []string{
	string(domain.Receivable),
	string(domain.Bank),
	string(domain.CurrentAsset),
	string(domain.OperatingExpense),
}

// earliest usable lower bound for as-of queries.
var beginningOfTime = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func (r *PgxReportingRepository) nettedBalances(ctx context.Context, entityID string, types []domain.AccountType, from, to time.Time) ([]domain.AccountBalance, error) {
	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	rows, err := r.pool.Query(ctx, balanceQuery, entityID, typeStrings, debitNormalTypes, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account balances for entity "+entityID, err)
	}
	defer rows.Close()

	var result []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.AccountName, &b.AccountType, &b.Code, &b.NetAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account balance row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account balance rows", err)
	}
	return result, nil
}

// GetBalanceSheetData retrieves netted asset, liability, and equity balances
// as of a date.
func (r *PgxReportingRepository) GetBalanceSheetData(ctx context.Context, entityID string, asOf time.Time) ([]domain.AccountBalance, []domain.AccountBalance, []domain.AccountBalance, error) {
	assets, err := r.nettedBalances(ctx, entityID,
		[]domain.AccountType{domain.Receivable, domain.Bank, domain.CurrentAsset}, beginningOfTime, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	liabilities, err := r.nettedBalances(ctx, entityID,
		[]domain.AccountType{domain.Payable, domain.Control}, beginningOfTime, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	equity, err := r.nettedBalances(ctx, entityID,
		[]domain.AccountType{domain.Equity}, beginningOfTime, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	return assets, liabilities, equity, nil
}

// GetIncomeStatementData retrieves netted revenue and expense balances for a
// period.
func (r *PgxReportingRepository) GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error) {
	revenues, err := r.nettedBalances(ctx, entityID,
		[]domain.AccountType{domain.OperatingRevenue}, from, to)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := r.nettedBalances(ctx, entityID,
		[]domain.AccountType{domain.OperatingExpense}, from, to)
	if err != nil {
		return nil, nil, err
	}
	return revenues, expenses, nil
}
