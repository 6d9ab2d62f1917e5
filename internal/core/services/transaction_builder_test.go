package services_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/core/domain"
	"github.com/invoicelab/accounting-backbone/internal/core/services"
	"github.com/invoicelab/accounting-backbone/internal/dto"
)

func testEntity() domain.Entity {
	return domain.Entity{
		EntityID:     uuid.NewString(),
		CompanyID:    uuid.NewString(),
		Name:         "Acme Ltd",
		CurrencyCode: "EUR",
	}
}

func testAccount(name string, accountType domain.AccountType) *domain.Account {
	return &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        name,
		AccountType: accountType,
	}
}

func lineFor(t *testing.T, txn *domain.Transaction, accountID string) domain.LineEntry {
	t.Helper()
	for _, line := range txn.Lines {
		if line.AccountID == accountID {
			return line
		}
	}
	t.Fatalf("no line entry for account %s", accountID)
	return domain.LineEntry{}
}

func TestBuildInvoiceTransaction_WithTax(t *testing.T) {
	entity := testEntity()
	receivable := testAccount("Accounts Receivable", domain.Receivable)
	revenue := testAccount("Sales Revenue", domain.OperatingRevenue)
	tax := testAccount("Tax Payable", domain.Control)

	input := dto.InvoicePostingInput{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-001",
		CustomerName:  "Test Customer",
		Total:         12000,
		SubTotal:      10000,
		Tax:           2000,
		InvoiceDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	txn, err := services.BuildInvoiceTransaction(entity, input, receivable, revenue, tax)
	require.NoError(t, err)

	assert.Equal(t, domain.ClientInvoice, txn.TransactionType)
	assert.Equal(t, "Invoice #INV-001 - Test Customer", txn.Narration)
	assert.Equal(t, entity.EntityID, txn.EntityID)
	assert.Equal(t, "EUR", txn.CurrencyCode)
	assert.Equal(t, input.InvoiceDate, txn.TransactionDate)
	require.Len(t, txn.Lines, 3)

	arLine := lineFor(t, txn, receivable.AccountID)
	assert.Equal(t, domain.Debit, arLine.EntryType)
	assert.Equal(t, int64(12000), arLine.Amount)

	revLine := lineFor(t, txn, revenue.AccountID)
	assert.Equal(t, domain.Credit, revLine.EntryType)
	assert.Equal(t, int64(10000), revLine.Amount)

	taxLine := lineFor(t, txn, tax.AccountID)
	assert.Equal(t, domain.Credit, taxLine.EntryType)
	assert.Equal(t, int64(2000), taxLine.Amount)

	assert.True(t, txn.Balanced())
}

func TestBuildInvoiceTransaction_NoTax(t *testing.T) {
	entity := testEntity()
	receivable := testAccount("Accounts Receivable", domain.Receivable)
	revenue := testAccount("Sales Revenue", domain.OperatingRevenue)

	input := dto.InvoicePostingInput{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-002",
		CustomerName:  "Untaxed Customer",
		Total:         5000,
		SubTotal:      5000,
	}

	txn, err := services.BuildInvoiceTransaction(entity, input, receivable, revenue, nil)
	require.NoError(t, err)
	require.Len(t, txn.Lines, 2)
	assert.True(t, txn.Balanced())
	// Zero invoice date falls back to now
	assert.WithinDuration(t, time.Now().UTC(), txn.TransactionDate, time.Second)
}

func TestBuildInvoiceTransaction_MismatchedTotals(t *testing.T) {
	entity := testEntity()
	receivable := testAccount("Accounts Receivable", domain.Receivable)
	revenue := testAccount("Sales Revenue", domain.OperatingRevenue)

	input := dto.InvoicePostingInput{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-003",
		CustomerName:  "Broken Customer",
		Total:         12000,
		SubTotal:      9000, // 9000 + 2000 != 12000
		Tax:           2000,
	}
	tax := testAccount("Tax Payable", domain.Control)

	txn, err := services.BuildInvoiceTransaction(entity, input, receivable, revenue, tax)
	require.Error(t, err)
	assert.Nil(t, txn)

	var unbalanced *services.UnbalancedTransactionError
	require.True(t, errors.As(err, &unbalanced))
	assert.Equal(t, int64(12000), unbalanced.Debits)
	assert.Equal(t, int64(11000), unbalanced.Credits)
}

func TestBuildPaymentTransaction(t *testing.T) {
	entity := testEntity()
	cash := testAccount("Cash and Bank", domain.Bank)
	receivable := testAccount("Accounts Receivable", domain.Receivable)

	input := dto.PaymentPostingInput{
		PaymentID:     uuid.NewString(),
		PaymentNumber: "PAY-001",
		CustomerName:  "Test Customer",
		Amount:        10000,
		PaymentDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	txn, err := services.BuildPaymentTransaction(entity, input, cash, receivable)
	require.NoError(t, err)

	assert.Equal(t, domain.ClientReceipt, txn.TransactionType)
	assert.Equal(t, "Payment #PAY-001 - Test Customer", txn.Narration)
	require.Len(t, txn.Lines, 2)
	assert.Equal(t, domain.Debit, lineFor(t, txn, cash.AccountID).EntryType)
	assert.Equal(t, domain.Credit, lineFor(t, txn, receivable.AccountID).EntryType)
	assert.True(t, txn.Balanced())
}

func TestBuildFeeTransaction(t *testing.T) {
	entity := testEntity()
	feeExpense := testAccount("Payment Processing Fees", domain.OperatingExpense)
	cash := testAccount("Cash and Bank", domain.Bank)

	input := dto.PaymentPostingInput{
		PaymentID:     uuid.NewString(),
		PaymentNumber: "PAY-002",
		CustomerName:  "Test Customer",
		Amount:        10000,
	}

	txn, err := services.BuildFeeTransaction(entity, input, 250, feeExpense, cash)
	require.NoError(t, err)

	assert.Equal(t, domain.JournalEntry, txn.TransactionType)
	assert.Equal(t, "Payment processing fee for #PAY-002", txn.Narration)
	require.Len(t, txn.Lines, 2)
	assert.Equal(t, int64(250), lineFor(t, txn, feeExpense.AccountID).Amount)
	assert.Equal(t, domain.Debit, lineFor(t, txn, feeExpense.AccountID).EntryType)
	assert.Equal(t, domain.Credit, lineFor(t, txn, cash.AccountID).EntryType)
	assert.True(t, txn.Balanced())
}

func TestBuildCreditNoteTransaction_ReversesInvoiceLegs(t *testing.T) {
	entity := testEntity()
	receivable := testAccount("Accounts Receivable", domain.Receivable)
	revenue := testAccount("Sales Revenue", domain.OperatingRevenue)
	tax := testAccount("Tax Payable", domain.Control)

	input := dto.CreditNotePostingInput{
		CreditNoteID:     uuid.NewString(),
		CreditNoteNumber: "CN-001",
		CustomerName:     "Test Customer",
		Total:            12000,
		SubTotal:         10000,
		Tax:              2000,
		InvoiceNumber:    "INV-001",
		InvoiceTxnID:     "txn-123",
	}

	txn, err := services.BuildCreditNoteTransaction(entity, input, receivable, revenue, tax)
	require.NoError(t, err)

	assert.Equal(t, domain.CreditNote, txn.TransactionType)
	assert.Contains(t, txn.Narration, "Credit Note #CN-001 - Test Customer")
	assert.Contains(t, txn.Narration, "(reverses Invoice #INV-001)")
	assert.Contains(t, txn.Narration, "[Ref Txn: txn-123]")

	// Every leg is the mirror of the invoice posting.
	assert.Equal(t, domain.Credit, lineFor(t, txn, receivable.AccountID).EntryType)
	assert.Equal(t, domain.Debit, lineFor(t, txn, revenue.AccountID).EntryType)
	assert.Equal(t, domain.Debit, lineFor(t, txn, tax.AccountID).EntryType)
	assert.True(t, txn.Balanced())
}

func TestBuildExpenseTransaction_TruncatesLongNotes(t *testing.T) {
	entity := testEntity()
	expense := testAccount("Travel", domain.OperatingExpense)
	cash := testAccount("Cash and Bank", domain.Bank)

	input := dto.ExpensePostingInput{
		ExpenseID:    uuid.NewString(),
		CategoryName: "Travel",
		Notes:        strings.Repeat("x", 150),
		Amount:       4200,
	}

	txn, err := services.BuildExpenseTransaction(entity, input, expense, cash)
	require.NoError(t, err)

	assert.Equal(t, domain.CashPurchase, txn.TransactionType)
	assert.Contains(t, txn.Narration, "Expense: Travel - ")
	assert.Contains(t, txn.Narration, strings.Repeat("x", 100))
	assert.NotContains(t, txn.Narration, strings.Repeat("x", 101))
	assert.True(t, txn.Balanced())
}

func TestBuildBillTransaction_WithVAT(t *testing.T) {
	entity := testEntity()
	expense := testAccount("General Expenses", domain.OperatingExpense)
	vat := testAccount("VAT Receivable", domain.CurrentAsset)
	payable := testAccount("Accounts Payable", domain.Payable)

	input := dto.BillPostingInput{
		BillID:       uuid.NewString(),
		BillNumber:   "BILL-001",
		SupplierName: "Office Corp",
		Total:        6050,
		SubTotal:     5000,
		Tax:          1050,
	}

	txn, err := services.BuildBillTransaction(entity, input, expense, vat, payable)
	require.NoError(t, err)

	assert.Equal(t, domain.SupplierBill, txn.TransactionType)
	assert.Equal(t, "Bill #BILL-001 - Office Corp", txn.Narration)
	require.Len(t, txn.Lines, 3)
	assert.Equal(t, domain.Debit, lineFor(t, txn, expense.AccountID).EntryType)
	assert.Equal(t, domain.Debit, lineFor(t, txn, vat.AccountID).EntryType)
	assert.Equal(t, domain.Credit, lineFor(t, txn, payable.AccountID).EntryType)
	assert.True(t, txn.Balanced())
}

func TestBuildBillPaymentTransaction_SupplierFallback(t *testing.T) {
	entity := testEntity()
	payable := testAccount("Accounts Payable", domain.Payable)
	cash := testAccount("Cash and Bank", domain.Bank)

	input := dto.BillPaymentPostingInput{
		BillPaymentID: uuid.NewString(),
		PaymentNumber: "BP-001",
		Amount:        6050,
	}

	txn, err := services.BuildBillPaymentTransaction(entity, input, payable, cash)
	require.NoError(t, err)

	assert.Equal(t, domain.SupplierPayment, txn.TransactionType)
	assert.Equal(t, "Bill Payment #BP-001 - Supplier", txn.Narration)
	assert.Equal(t, domain.Debit, lineFor(t, txn, payable.AccountID).EntryType)
	assert.Equal(t, domain.Credit, lineFor(t, txn, cash.AccountID).EntryType)
	assert.True(t, txn.Balanced())
}

func TestNewLedgerTransaction_RejectsSingleLine(t *testing.T) {
	entity := testEntity()
	lines := []services.PostingLine{
		{Account: testAccount("Cash and Bank", domain.Bank), Amount: 100, EntryType: domain.Debit},
	}

	_, err := services.NewLedgerTransaction(entity, domain.JournalEntry, "one-legged", time.Time{}, lines)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestNewLedgerTransaction_RejectsNonPositiveAmounts(t *testing.T) {
	entity := testEntity()
	cash := testAccount("Cash and Bank", domain.Bank)
	receivable := testAccount("Accounts Receivable", domain.Receivable)

	for _, amount := range []int64{0, -500} {
		lines := []services.PostingLine{
			{Account: cash, Amount: amount, EntryType: domain.Debit},
			{Account: receivable, Amount: amount, EntryType: domain.Credit},
		}
		_, err := services.NewLedgerTransaction(entity, domain.JournalEntry, "bad amount", time.Time{}, lines)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	}
}

func TestNewLedgerTransaction_RejectsUnbalancedLines(t *testing.T) {
	entity := testEntity()
	cash := testAccount("Cash and Bank", domain.Bank)
	receivable := testAccount("Accounts Receivable", domain.Receivable)

	lines := []services.PostingLine{
		{Account: cash, Amount: 1000, EntryType: domain.Debit},
		{Account: receivable, Amount: 999, EntryType: domain.Credit},
	}

	_, err := services.NewLedgerTransaction(entity, domain.JournalEntry, "off by one", time.Time{}, lines)
	require.Error(t, err)

	var unbalanced *services.UnbalancedTransactionError
	require.True(t, errors.As(err, &unbalanced))
	assert.Equal(t, int64(1000), unbalanced.Debits)
	assert.Equal(t, int64(999), unbalanced.Credits)
}

// Every accepted invoice template balances, whatever the amounts.
func TestBuildInvoiceTransaction_AlwaysBalancedWhenAccepted(t *testing.T) {
	entity := testEntity()
	receivable := testAccount("Accounts Receivable", domain.Receivable)
	revenue := testAccount("Sales Revenue", domain.OperatingRevenue)
	tax := testAccount("Tax Payable", domain.Control)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		subTotal := rng.Int63n(1_000_000) + 1
		taxAmount := rng.Int63n(subTotal/2 + 1)

		input := dto.InvoicePostingInput{
			InvoiceID:     uuid.NewString(),
			InvoiceNumber: "INV-RND",
			CustomerName:  "Random Customer",
			Total:         subTotal + taxAmount,
			SubTotal:      subTotal,
			Tax:           taxAmount,
		}

		txn, err := services.BuildInvoiceTransaction(entity, input, receivable, revenue, tax)
		require.NoError(t, err)
		assert.True(t, txn.Balanced())
		assert.Equal(t, txn.DebitTotal(), txn.CreditTotal())
	}
}
