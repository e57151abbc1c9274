package entity

// QuotationStatus is the lifecycle of a contractor bid
type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "PENDING"
	QuotationAccepted  QuotationStatus = "ACCEPTED"
	QuotationRejected  QuotationStatus = "REJECTED"
	QuotationWithdrawn QuotationStatus = "WITHDRAWN"
)

func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationPending, QuotationAccepted, QuotationRejected, QuotationWithdrawn:
		return true
	}
	return false
}

// Installment is a scheduled partial payment within a quotation
type Installment struct {
	Label         string  `json:"label"`
	Amount        float64 `json:"amount"`
	DueOffsetDays int     `json:"due_offset_days"`
}

// ExecutionPhase is a planned work stage with its share of the price
type ExecutionPhase struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Order  int     `json:"order"`
}

// Quotation is a contractor's priced bid on a client request
type Quotation struct {
	ID              string           `json:"id"`
	RequestID       string           `json:"request_id"`
	ContractorID    string           `json:"contractor_id"`
	Price           float64          `json:"price"`
	DurationDays    int              `json:"duration_days"`
	Status          QuotationStatus  `json:"status"`
	Installments    []Installment    `json:"installments,omitempty"`
	ExecutionPhases []ExecutionPhase `json:"execution_phases,omitempty"`
	CreatedAt       string           `json:"created_at"`
}
