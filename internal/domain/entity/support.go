package entity

// ComplaintStatus is the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintOpen      ComplaintStatus = "OPEN"
	ComplaintResponded ComplaintStatus = "RESPONDED"
	ComplaintResolved  ComplaintStatus = "RESOLVED"
	ComplaintEscalated ComplaintStatus = "ESCALATED"
)

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintOpen, ComplaintResponded, ComplaintResolved, ComplaintEscalated:
		return true
	}
	return false
}

// Complaint is a client or contractor grievance handled by the admin team
type Complaint struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	ProjectID   string          `json:"project_id,omitempty"`
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	Response    string          `json:"response,omitempty"`
	RespondedAt string          `json:"responded_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// TicketStatus is the handling state of a support ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// SupportTicket is a customer-support case
type SupportTicket struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Subject   string       `json:"subject"`
	Priority  string       `json:"priority"`
	Status    TicketStatus `json:"status"`
	Reply     string       `json:"reply,omitempty"`
	CreatedAt string       `json:"created_at"`
}

// Notification is an outbound message shown in the notification center
type Notification struct {
	ID        string `json:"id"`
	Audience  string `json:"audience"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ReadAt    string `json:"read_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ChatThread is a client-contractor conversation around a request
type ChatThread struct {
	ID           string `json:"id"`
	RequestID    string `json:"request_id"`
	ClientID     string `json:"client_id"`
	ContractorID string `json:"contractor_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ChatMessage is a single message within a thread
type ChatMessage struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
	SentAt   string `json:"sent_at"`
}
