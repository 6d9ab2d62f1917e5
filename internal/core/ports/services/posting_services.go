package services

import (
	"context"

	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// PostingSvcFacade converts business documents into balanced ledger
// transactions. Each PostX call is a no-op when the accounting feature is
// disabled or the document already carries a ledger reference; otherwise it
// posts exactly once and writes the reference back onto the document row.
type PostingSvcFacade interface {
	PostInvoice(ctx context.Context, company domain.Company, input dto.InvoicePostingInput) error
	PostPayment(ctx context.Context, company domain.Company, input dto.PaymentPostingInput) error
	PostFee(ctx context.Context, company domain.Company, input dto.PaymentPostingInput, feeAmount int64) error
	PostCreditNote(ctx context.Context, company domain.Company, input dto.CreditNotePostingInput) error
	PostExpense(ctx context.Context, company domain.Company, input dto.ExpensePostingInput) error
	PostBill(ctx context.Context, company domain.Company, input dto.BillPostingInput) error
	PostBillPayment(ctx context.Context, company domain.Company, input dto.BillPaymentPostingInput) error
}
