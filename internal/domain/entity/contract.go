package entity

// MilestoneStatus is the payment state of a contract milestone
type MilestoneStatus string

const (
	MilestoneNotDue MilestoneStatus = "NotDue"
	MilestoneDue    MilestoneStatus = "Due"
	MilestonePaid   MilestoneStatus = "Paid"
)

func (s MilestoneStatus) IsValid() bool {
	return s == MilestoneNotDue || s == MilestoneDue || s == MilestonePaid
}

// Milestone is a scheduled partial-payment checkpoint within a contract
type Milestone struct {
	ID         string          `json:"id"`
	ContractID string          `json:"contract_id"`
	Title      string          `json:"title"`
	Amount     float64         `json:"amount"`
	Status     MilestoneStatus `json:"status"`
	DueDate    string          `json:"due_date"`
	PaidAt     string          `json:"paid_at,omitempty"`
}

// Contract is created from an accepted quotation
type Contract struct {
	ID           string      `json:"id"`
	QuotationID  string      `json:"quotation_id"`
	RequestID    string      `json:"request_id"`
	ClientID     string      `json:"client_id"`
	ContractorID string      `json:"contractor_id"`
	TotalPrice   float64     `json:"total_price"`
	Milestones   []Milestone `json:"milestones"`
	SignedAt     string      `json:"signed_at,omitempty"`
	CreatedAt    string      `json:"created_at"`
}

// ProjectStatus is the execution state of a contracted project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project tracks execution of a contract
type Project struct {
	ID         string        `json:"id"`
	RequestID  string        `json:"request_id"`
	ContractID string        `json:"contract_id"`
	Name       string        `json:"name"`
	Progress   int           `json:"progress"`
	Status     ProjectStatus `json:"status"`
	CreatedAt  string        `json:"created_at"`
}
