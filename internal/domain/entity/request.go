package entity

// RequestStatus is the lifecycle of a regular service request
type RequestStatus string

const (
	RequestDraft      RequestStatus = "DRAFT"
	RequestPending    RequestStatus = "PENDING"
	RequestInReview   RequestStatus = "IN_REVIEW"
	RequestAccepted   RequestStatus = "ACCEPTED"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
	RequestCancelled  RequestStatus = "CANCELLED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestDraft, RequestPending, RequestInReview, RequestAccepted,
		RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// QuickOrderStatus is the lifecycle of a fixed-scope quick service order
type QuickOrderStatus string

const (
	QuickOrderDraft     QuickOrderStatus = "DRAFT"
	QuickOrderSubmitted QuickOrderStatus = "SUBMITTED"
	QuickOrderAccepted  QuickOrderStatus = "ACCEPTED"
	QuickOrderScheduled QuickOrderStatus = "SCHEDULED"
	QuickOrderCompleted QuickOrderStatus = "COMPLETED"
	QuickOrderCancelled QuickOrderStatus = "CANCELLED"
)

func (s QuickOrderStatus) IsValid() bool {
	switch s {
	case QuickOrderDraft, QuickOrderSubmitted, QuickOrderAccepted,
		QuickOrderScheduled, QuickOrderCompleted, QuickOrderCancelled:
		return true
	}
	return false
}

// ServiceRequest is an open request that collects competing quotations
type ServiceRequest struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id"`
	SubcategoryID string        `json:"subcategory_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	City          string        `json:"city"`
	District      string        `json:"district"`
	Urgency       string        `json:"urgency"`
	Status        RequestStatus `json:"status"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// QuickServiceOrder is a fixed-price, fixed-scope service order
type QuickServiceOrder struct {
	ID             string           `json:"id"`
	ClientID       string           `json:"client_id"`
	QuickServiceID string           `json:"quick_service_id"`
	City           string           `json:"city"`
	District       string           `json:"district"`
	Price          float64          `json:"price"`
	ScheduledFor   string           `json:"scheduled_for,omitempty"`
	Status         QuickOrderStatus `json:"status"`
	CreatedAt      string           `json:"created_at"`
}
