package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

// PostingLine is one leg of a posting template: an amount in minor units
// against a resolved account.
type PostingLine struct {
	Account   *domain.Account
	Amount    int64
	EntryType domain.EntryType
}

// NewLedgerTransaction assembles a ledger transaction from template lines and
// verifies the accounting identity before returning. A template whose debit
// and credit sums differ is rejected with UnbalancedTransactionError; it must
// never reach persistence.
func NewLedgerTransaction(entity domain.Entity, txnType domain.TransactionType, narration string, date time.Time, lines []PostingLine) (*domain.Transaction, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: transaction %q needs at least two line entries", apperrors.ErrValidation, narration)
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		EntityID:        entity.EntityID,
		TransactionType: txnType,
		Narration:       narration,
		TransactionDate: date,
		CurrencyCode:    entity.CurrencyCode,
		Lines:           make([]domain.LineEntry, 0, len(lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	for _, line := range lines {
		if line.Amount <= 0 {
			return nil, fmt.Errorf("%w: line amount must be positive for account %q in transaction %q", apperrors.ErrValidation, line.Account.Name, narration)
		}
		txn.Lines = append(txn.Lines, domain.LineEntry{
			LineID:        uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     line.Account.AccountID,
			Amount:        line.Amount,
			EntryType:     line.EntryType,
		})
	}

	if !txn.Balanced() {
		return nil, &UnbalancedTransactionError{
			Narration: narration,
			Debits:    txn.DebitTotal(),
			Credits:   txn.CreditTotal(),
		}
	}
	return &txn, nil
}

// BuildInvoiceTransaction posts an invoice:
// DR Accounts Receivable total, CR Sales Revenue sub_total, CR Tax Payable tax.
// The tax leg is emitted only when tax > 0; taxPayable may be nil otherwise.
func BuildInvoiceTransaction(entity domain.Entity, input dto.InvoicePostingInput, receivable, revenue, taxPayable *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: receivable, Amount: input.Total, EntryType: domain.Debit},
		{Account: revenue, Amount: input.SubTotal, EntryType: domain.Credit},
	}
	if input.Tax > 0 {
		lines = append(lines, PostingLine{Account: taxPayable, Amount: input.Tax, EntryType: domain.Credit})
	}

	narration := fmt.Sprintf("Invoice #%s - %s", input.InvoiceNumber, input.CustomerName)
	return NewLedgerTransaction(entity, domain.ClientInvoice, narration, input.InvoiceDate, lines)
}

// BuildPaymentTransaction posts a completed customer payment:
// DR Cash and Bank amount, CR Accounts Receivable amount.
func BuildPaymentTransaction(entity domain.Entity, input dto.PaymentPostingInput, cash, receivable *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: cash, Amount: input.Amount, EntryType: domain.Debit},
		{Account: receivable, Amount: input.Amount, EntryType: domain.Credit},
	}

	narration := fmt.Sprintf("Payment #%s - %s", input.PaymentNumber, input.CustomerName)
	return NewLedgerTransaction(entity, domain.ClientReceipt, narration, input.PaymentDate, lines)
}

// BuildFeeTransaction posts a payment gateway fee:
// DR Payment Processing Fees fee, CR Cash and Bank fee.
func BuildFeeTransaction(entity domain.Entity, input dto.PaymentPostingInput, fee int64, feeExpense, cash *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: feeExpense, Amount: fee, EntryType: domain.Debit},
		{Account: cash, Amount: fee, EntryType: domain.Credit},
	}

	narration := fmt.Sprintf("Payment processing fee for #%s", input.PaymentNumber)
	return NewLedgerTransaction(entity, domain.JournalEntry, narration, input.PaymentDate, lines)
}

// BuildCreditNoteTransaction reverses an invoice posting:
// CR Accounts Receivable total, DR Sales Revenue sub_total, DR Tax Payable tax.
func BuildCreditNoteTransaction(entity domain.Entity, input dto.CreditNotePostingInput, receivable, revenue, taxPayable *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: receivable, Amount: input.Total, EntryType: domain.Credit},
		{Account: revenue, Amount: input.SubTotal, EntryType: domain.Debit},
	}
	if input.Tax > 0 {
		lines = append(lines, PostingLine{Account: taxPayable, Amount: input.Tax, EntryType: domain.Debit})
	}

	narration := fmt.Sprintf("Credit Note #%s - %s", input.CreditNoteNumber, input.CustomerName)
	if input.InvoiceNumber != "" {
		narration += fmt.Sprintf(" (reverses Invoice #%s)", input.InvoiceNumber)
	}
	if input.InvoiceTxnID != "" {
		narration += fmt.Sprintf(" [Ref Txn: %s]", input.InvoiceTxnID)
	}
	return NewLedgerTransaction(entity, domain.CreditNote, narration, input.CreditNoteDate, lines)
}

// BuildExpenseTransaction posts a company expense:
// DR category expense account, CR Cash and Bank.
func BuildExpenseTransaction(entity domain.Entity, input dto.ExpensePostingInput, expense, cash *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: expense, Amount: input.Amount, EntryType: domain.Debit},
		{Account: cash, Amount: input.Amount, EntryType: domain.Credit},
	}

	category := input.CategoryName
	if category == "" {
		category = "General Expenses"
	}
	narration := fmt.Sprintf("Expense: %s", category)
	if input.Notes != "" {
		notes := input.Notes
		if len(notes) > 100 {
			notes = notes[:100]
		}
		narration += " - " + notes
	}
	return NewLedgerTransaction(entity, domain.CashPurchase, narration, input.ExpenseDate, lines)
}

// BuildBillTransaction posts a supplier bill:
// DR expense sub_total, DR VAT Receivable tax, CR Accounts Payable total.
// Input VAT is an asset; vatReceivable may be nil when tax == 0.
func BuildBillTransaction(entity domain.Entity, input dto.BillPostingInput, expense, vatReceivable, payable *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: expense, Amount: input.SubTotal, EntryType: domain.Debit},
	}
	if input.Tax > 0 {
		lines = append(lines, PostingLine{Account: vatReceivable, Amount: input.Tax, EntryType: domain.Debit})
	}
	lines = append(lines, PostingLine{Account: payable, Amount: input.Total, EntryType: domain.Credit})

	narration := fmt.Sprintf("Bill #%s - %s", input.BillNumber, input.SupplierName)
	return NewLedgerTransaction(entity, domain.SupplierBill, narration, input.BillDate, lines)
}

// BuildBillPaymentTransaction posts a payment against a supplier bill:
// DR Accounts Payable amount, CR Cash and Bank amount.
func BuildBillPaymentTransaction(entity domain.Entity, input dto.BillPaymentPostingInput, payable, cash *domain.Account) (*domain.Transaction, error) {
	lines := []PostingLine{
		{Account: payable, Amount: input.Amount, EntryType: domain.Debit},
		{Account: cash, Amount: input.Amount, EntryType: domain.Credit},
	}

	supplier := input.SupplierName
	if supplier == "" {
		supplier = "Supplier"
	}
	narration := fmt.Sprintf("Bill Payment #%s - %s", input.PaymentNumber, supplier)
	return NewLedgerTransaction(entity, domain.SupplierPayment, narration, input.PaymentDate, lines)
}
