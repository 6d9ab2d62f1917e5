package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	portssvc "github.com/invoicelab/accounting-backbone/internal/core/ports/services"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// postingService is the posting orchestrator: it feature-gates, runs the
// entity/period guard, resolves accounts, builds the balanced transaction,
// and persists it together with the document back-reference so each source
// document posts at most once.
type postingService struct {
	BaseService
	flags      portssvc.FeatureFlags
	guard      portssvc.EntityGuardSvcFacade
	resolver   portssvc.AccountResolverSvcFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	validate   *validator.Validate
}

// NewPostingService creates a new posting orchestrator.
func NewPostingService(flags portssvc.FeatureFlags, guard portssvc.EntityGuardSvcFacade, resolver portssvc.AccountResolverSvcFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{
		flags:      flags,
		guard:      guard,
		resolver:   resolver,
		ledgerRepo: ledgerRepo,
		validate:   validator.New(),
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// preparePosting runs the shared entry sequence: feature gate, idempotency
// check, input validation, and the entity/period guard. A (nil, nil) return
// means the call is a deliberate no-op. Guard failures propagate unchanged.
func (s *postingService) preparePosting(ctx context.Context, company domain.Company, input any, doc domain.DocumentRef, knownRef *string, date time.Time) (*domain.Entity, error) {
	if !s.flags.IsAccountingEnabled(ctx, company.CompanyID) {
		s.LogDebug(ctx, "Accounting backbone disabled, skipping posting",
			slog.String("company_id", company.CompanyID),
			slog.String("document_type", string(doc.Type)),
			slog.String("document_id", doc.DocumentID))
		return nil, nil
	}

	if knownRef != nil && *knownRef != "" {
		s.LogInfo(ctx, "Document already posted to ledger, skipping",
			slog.String("document_type", string(doc.Type)),
			slog.String("document_id", doc.DocumentID),
			slog.String("ledger_transaction_id", *knownRef))
		return nil, nil
	}

	// The caller-supplied reference may be stale on retry; the store is
	// authoritative.
	existing, err := s.ledgerRepo.GetDocumentTransactionID(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to check posting state of %s %s: %w", doc.Type, doc.DocumentID, err)
	}
	if existing != nil {
		s.LogInfo(ctx, "Document already posted to ledger, skipping",
			slog.String("document_type", string(doc.Type)),
			slog.String("document_id", doc.DocumentID),
			slog.String("ledger_transaction_id", *existing))
		return nil, nil
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrValidation, doc.Type, doc.DocumentID, err)
	}

	entity, err := s.guard.EnsureEntityExists(ctx, company)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}
	if err := s.guard.EnsurePeriodOpen(ctx, *entity, date); err != nil {
		return nil, err
	}
	return entity, nil
}

// persist writes the transaction and the document back-reference in one
// atomic unit. Losing the claim race means a concurrent worker posted the
// same document first; that is an idempotent success, not an error.
func (s *postingService) persist(ctx context.Context, txn *domain.Transaction, doc domain.DocumentRef) error {
	err := s.ledgerRepo.SavePostedTransaction(ctx, *txn, doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Concurrent posting won the claim race, skipping",
				slog.String("document_type", string(doc.Type)),
				slog.String("document_id", doc.DocumentID))
			return nil
		}
		s.LogError(ctx, err, "Failed to persist ledger transaction",
			slog.String("document_type", string(doc.Type)),
			slog.String("document_id", doc.DocumentID))
		return fmt.Errorf("failed to persist ledger transaction for %s %s: %w", doc.Type, doc.DocumentID, err)
	}

	s.LogInfo(ctx, "Posted document to ledger",
		slog.String("document_type", string(doc.Type)),
		slog.String("document_id", doc.DocumentID),
		slog.String("ledger_transaction_id", txn.TransactionID))
	return nil
}

// PostInvoice posts an invoice transitioned to SENT:
// DR Accounts Receivable, CR Sales Revenue, CR Tax Payable (if taxed).
func (s *postingService) PostInvoice(ctx context.Context, company domain.Company, input dto.InvoicePostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentInvoice, DocumentID: input.InvoiceID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.InvoiceDate)
	if err != nil || entity == nil {
		return err
	}

	receivable, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartAccountsReceivable)
	if err != nil {
		return err
	}
	revenue, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartSalesRevenue)
	if err != nil {
		return err
	}
	var taxPayable *domain.Account
	if input.Tax > 0 {
		if taxPayable, err = s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartTaxPayable); err != nil {
			return err
		}
	}

	txn, err := BuildInvoiceTransaction(*entity, input, receivable, revenue, taxPayable)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostPayment posts a completed customer payment:
// DR Cash and Bank, CR Accounts Receivable.
func (s *postingService) PostPayment(ctx context.Context, company domain.Company, input dto.PaymentPostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentPayment, DocumentID: input.PaymentID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.PaymentDate)
	if err != nil || entity == nil {
		return err
	}

	cash, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartCashAndBank)
	if err != nil {
		return err
	}
	receivable, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartAccountsReceivable)
	if err != nil {
		return err
	}

	txn, err := BuildPaymentTransaction(*entity, input, cash, receivable)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostFee posts a payment gateway fee as its own balanced journal entry:
// DR Payment Processing Fees, CR Cash and Bank. Fees are posted
// independently of the payment itself; ordering between the two calls does
// not affect ledger integrity.
func (s *postingService) PostFee(ctx context.Context, company domain.Company, input dto.PaymentPostingInput, feeAmount int64) error {
	if !s.flags.IsAccountingEnabled(ctx, company.CompanyID) {
		s.LogDebug(ctx, "Accounting backbone disabled, skipping fee posting",
			slog.String("company_id", company.CompanyID),
			slog.String("payment_id", input.PaymentID))
		return nil
	}
	if feeAmount <= 0 {
		return fmt.Errorf("%w: fee amount must be positive for payment %s", apperrors.ErrValidation, input.PaymentID)
	}

	doc := domain.DocumentRef{Type: domain.DocumentPaymentFee, DocumentID: input.PaymentID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.FeeLedgerTransactionID, input.PaymentDate)
	if err != nil || entity == nil {
		return err
	}

	feeExpense, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartProcessingFees)
	if err != nil {
		return err
	}
	cash, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartCashAndBank)
	if err != nil {
		return err
	}

	txn, err := BuildFeeTransaction(*entity, input, feeAmount, feeExpense, cash)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostCreditNote reverses an invoice posting.
func (s *postingService) PostCreditNote(ctx context.Context, company domain.Company, input dto.CreditNotePostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentCreditNote, DocumentID: input.CreditNoteID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.CreditNoteDate)
	if err != nil || entity == nil {
		return err
	}

	receivable, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartAccountsReceivable)
	if err != nil {
		return err
	}
	revenue, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartSalesRevenue)
	if err != nil {
		return err
	}
	var taxPayable *domain.Account
	if input.Tax > 0 {
		if taxPayable, err = s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartTaxPayable); err != nil {
			return err
		}
	}

	txn, err := BuildCreditNoteTransaction(*entity, input, receivable, revenue, taxPayable)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostExpense posts a recorded company expense.
func (s *postingService) PostExpense(ctx context.Context, company domain.Company, input dto.ExpensePostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentExpense, DocumentID: input.ExpenseID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.ExpenseDate)
	if err != nil || entity == nil {
		return err
	}

	expense, err := s.resolver.ResolveExpenseAccount(ctx, *entity, input.CategoryName)
	if err != nil {
		return err
	}
	cash, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartCashAndBank)
	if err != nil {
		return err
	}

	txn, err := BuildExpenseTransaction(*entity, input, expense, cash)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostBill posts a received supplier bill.
func (s *postingService) PostBill(ctx context.Context, company domain.Company, input dto.BillPostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentBill, DocumentID: input.BillID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.BillDate)
	if err != nil || entity == nil {
		return err
	}

	expense, err := s.resolver.ResolveExpenseAccount(ctx, *entity, "")
	if err != nil {
		return err
	}
	payable, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartAccountsPayable)
	if err != nil {
		return err
	}
	var vatReceivable *domain.Account
	if input.Tax > 0 {
		if vatReceivable, err = s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartVATReceivable); err != nil {
			return err
		}
	}

	txn, err := BuildBillTransaction(*entity, input, expense, vatReceivable, payable)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}

// PostBillPayment posts a payment made against a supplier bill.
func (s *postingService) PostBillPayment(ctx context.Context, company domain.Company, input dto.BillPaymentPostingInput) error {
	doc := domain.DocumentRef{Type: domain.DocumentBillPayment, DocumentID: input.BillPaymentID}
	entity, err := s.preparePosting(ctx, company, input, doc, input.LedgerTransactionID, input.PaymentDate)
	if err != nil || entity == nil {
		return err
	}

	payable, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartAccountsPayable)
	if err != nil {
		return err
	}
	cash, err := s.resolver.ResolveChartAccount(ctx, *entity, domain.ChartCashAndBank)
	if err != nil {
		return err
	}

	txn, err := BuildBillPaymentTransaction(*entity, input, payable, cash)
	if err != nil {
		return err
	}
	return s.persist(ctx, txn, doc)
}
