package entity

// InvoiceStatus is the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceDraft    InvoiceStatus = "DRAFT"
	InvoiceSent     InvoiceStatus = "SENT"
	InvoiceApproved InvoiceStatus = "APPROVED"
	InvoiceRejected InvoiceStatus = "REJECTED"
	InvoicePaid     InvoiceStatus = "PAID"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoiceApproved, InvoiceRejected, InvoicePaid:
		return true
	}
	return false
}

// ZatcaStatus is the Saudi e-invoicing compliance state, orthogonal to the
// billing status
type ZatcaStatus string

const (
	ZatcaPending  ZatcaStatus = "PENDING"
	ZatcaReported ZatcaStatus = "REPORTED"
	ZatcaCleared  ZatcaStatus = "CLEARED"
	ZatcaRejected ZatcaStatus = "REJECTED"
)

func (s ZatcaStatus) IsValid() bool {
	switch s {
	case ZatcaPending, ZatcaReported, ZatcaCleared, ZatcaRejected:
		return true
	}
	return false
}

// Invoice belongs to a project milestone. Amount plus 15% VAT should equal
// TotalAmount; the check is advisory only.
type Invoice struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	MilestoneID string        `json:"milestone_id,omitempty"`
	Amount      float64       `json:"amount"`
	VATAmount   float64       `json:"vat_amount"`
	TotalAmount float64       `json:"total_amount"`
	Status      InvoiceStatus `json:"status"`
	ZatcaStatus ZatcaStatus   `json:"zatca_status"`
	ZohoSyncID  string        `json:"zoho_sync_id,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// PaymentStatus is the processing state of a payment
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSuccess    PaymentStatus = "SUCCESS"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentSuccess, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Refund holds refund metadata for refunded payments
type Refund struct {
	Reason     string  `json:"reason"`
	Amount     float64 `json:"amount"`
	TxnID      string  `json:"txn_id"`
	RefundedAt string  `json:"refunded_at"`
}

// Payment is a transaction against an invoice
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"method"`
	Status    PaymentStatus `json:"status"`
	Refund    *Refund       `json:"refund,omitempty"`
	CreatedAt string        `json:"created_at"`
}

// SettlementStatus is the payout state of a settlement batch
type SettlementStatus string

const (
	SettlementPending SettlementStatus = "PENDING"
	SettlementPaid    SettlementStatus = "PAID"
)

// Settlement is a periodic payout batch to a contractor netting fees and VAT
// from the gross invoiced amount
type Settlement struct {
	ID           string           `json:"id"`
	ContractorID string           `json:"contractor_id"`
	PeriodStart  string           `json:"period_start"`
	PeriodEnd    string           `json:"period_end"`
	GrossAmount  float64          `json:"gross_amount"`
	Fees         float64          `json:"fees"`
	VATAmount    float64          `json:"vat_amount"`
	NetAmount    float64          `json:"net_amount"`
	Status       SettlementStatus `json:"status"`
	CreatedAt    string           `json:"created_at"`
}
