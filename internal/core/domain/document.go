package domain

// DocumentType identifies the kind of source document a posting originates from.
type DocumentType string

const (
	DocumentInvoice     DocumentType = "INVOICE"
	DocumentPayment     DocumentType = "PAYMENT"
	DocumentPaymentFee  DocumentType = "PAYMENT_FEE"
	DocumentCreditNote  DocumentType = "CREDIT_NOTE"
	DocumentExpense     DocumentType = "EXPENSE"
	DocumentBill        DocumentType = "BILL"
	DocumentBillPayment DocumentType = "BILL_PAYMENT"
)

// DocumentRef identifies the source-document row that receives the ledger
// transaction back-reference. The document itself is owned by the invoicing
// or payments module; the core only writes the single reference field, once.
type DocumentRef struct {
	Type       DocumentType
	DocumentID string
}
