package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	"github.com/invoicelab/accounting-backbone/internal/models"
	"github.com/invoicelab/accounting-backbone/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for posted ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// claimTarget names the document table and back-reference column that a
// posting claims. Each document type has exactly one claim column.
type claimTarget struct {
	table  string
	column string
	idCol  string
}

var claimTargets = map[domain.DocumentType]claimTarget{
	domain.DocumentInvoice:     {table: "invoices", column: "ledger_transaction_id", idCol: "invoice_id"},
	domain.DocumentPayment:     {table: "payments", column: "ledger_transaction_id", idCol: "payment_id"},
	domain.DocumentPaymentFee:  {table: "payments", column: "fee_ledger_transaction_id", idCol: "payment_id"},
	domain.DocumentCreditNote:  {table: "credit_notes", column: "ledger_transaction_id", idCol: "credit_note_id"},
	domain.DocumentExpense:     {table: "expenses", column: "ledger_transaction_id", idCol: "expense_id"},
	domain.DocumentBill:        {table: "bills", column: "ledger_transaction_id", idCol: "bill_id"},
	domain.DocumentBillPayment: {table: "bill_payments", column: "ledger_transaction_id", idCol: "bill_payment_id"},
}

// SavePostedTransaction persists the transaction header, its line entries,
// and the source document's back-reference in one DB transaction. The
// back-reference update is conditional on the column still being null; zero
// rows affected means another poster claimed the document first, everything
// rolls back, and ErrConflict is returned.
func (r *PgxLedgerRepository) SavePostedTransaction(ctx context.Context, txn domain.Transaction, doc domain.DocumentRef) error {
	target, ok := claimTargets[doc.Type]
	if !ok {
		return apperrors.NewAppError(400, "unknown document type "+string(doc.Type), apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	modelTxn := mapping.ToModelTransaction(txn)
	headerQuery := `
		INSERT INTO ledger_transactions (transaction_id, entity_id, transaction_type, narration, transaction_date, currency_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.EntityID,
		modelTxn.TransactionType,
		modelTxn.Narration,
		modelTxn.TransactionDate,
		modelTxn.CurrencyCode,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger transaction "+txn.TransactionID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO ledger_lines (line_id, transaction_id, account_id, amount, entry_type)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range txn.Lines {
		modelLine := mapping.ToModelLineEntry(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.TransactionID,
			modelLine.AccountID,
			modelLine.Amount,
			modelLine.EntryType,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range txn.Lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert line entries for transaction "+txn.TransactionID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close line entry batch for transaction "+txn.TransactionID, err)
	}

	claimQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1
		WHERE %s = $2 AND %s IS NULL;
	`, target.table, target.column, target.idCol, target.column)
	tag, err := tx.Exec(ctx, claimQuery, txn.TransactionID, doc.DocumentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to claim document "+doc.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "document "+doc.DocumentID+" was already posted", apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

// GetDocumentTransactionID returns the transaction id the document already
// claims, or nil when the document exists and is unposted. A missing
// document row is ErrNotFound.
func (r *PgxLedgerRepository) GetDocumentTransactionID(ctx context.Context, doc domain.DocumentRef) (*string, error) {
	target, ok := claimTargets[doc.Type]
	if !ok {
		return nil, apperrors.NewAppError(400, "unknown document type "+string(doc.Type), apperrors.ErrValidation)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1;`, target.column, target.table, target.idCol)
	var txnID *string
	err := r.Pool.QueryRow(ctx, query, doc.DocumentID).Scan(&txnID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read back-reference for document "+doc.DocumentID, err)
	}
	return txnID, nil
}

// FindTransactionByID retrieves a posted transaction with its line entries.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	headerQuery := `
		SELECT transaction_id, entity_id, transaction_type, narration, transaction_date, currency_code, created_at
		FROM ledger_transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, headerQuery, transactionID).Scan(
		&m.TransactionID, &m.EntityID, &m.TransactionType, &m.Narration, &m.TransactionDate, &m.CurrencyCode, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	linesQuery := `
		SELECT line_id, transaction_id, account_id, amount, entry_type
		FROM ledger_lines
		WHERE transaction_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load line entries for transaction "+transactionID, err)
	}
	defer rows.Close()

	txn := domain.Transaction{
		TransactionID:   m.TransactionID,
		EntityID:        m.EntityID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Narration:       m.Narration,
		TransactionDate: m.TransactionDate,
		CurrencyCode:    m.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.CreatedAt,
		},
	}
	for rows.Next() {
		var ml models.LineEntry
		if err := rows.Scan(&ml.LineID, &ml.TransactionID, &ml.AccountID, &ml.Amount, &ml.EntryType); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line entry for transaction "+transactionID, err)
		}
		txn.Lines = append(txn.Lines, mapping.ToDomainLineEntry(ml))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate line entries for transaction "+transactionID, err)
	}
	return &txn, nil
}
