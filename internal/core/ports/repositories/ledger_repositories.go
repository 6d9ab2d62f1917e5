package repositories

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
)

// LedgerReader defines read operations for posted ledger transactions.
type LedgerReader interface {
	// FindTransactionByID retrieves a posted transaction with its line entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// GetDocumentTransactionID returns the ledger transaction id already
	// claimed by the source document, or nil if the document is unposted.
	GetDocumentTransactionID(ctx context.Context, doc domain.DocumentRef) (*string, error)
}

// LedgerWriter defines the single posting write path.
type LedgerWriter interface {
	// SavePostedTransaction persists the transaction, its line entries, and
	// the source document's back-reference in one atomic unit of work. The
	// back-reference is a conditional update (set only while null); losing
	// that race rolls everything back and returns apperrors.ErrConflict.
	SavePostedTransaction(ctx context.Context, txn domain.Transaction, doc domain.DocumentRef) error
}

// LedgerRepositoryFacade combines ledger read and write interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
