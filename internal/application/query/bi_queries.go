package query

import "time"

// GetBIStats is the query behind the BI page: every figure is computed over
// the inclusive [From, To] calendar range.
type GetBIStats struct {
	From time.Time
	To   time.Time
}

// RequestStats is the request breakdown by status group.
type RequestStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Accepted   int `json:"accepted"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

type QuickOrderStats struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type QuotationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type ProjectStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type InvoiceStats struct {
	Total   int     `json:"total"`
	Paid    int     `json:"paid"`
	Revenue float64 `json:"revenue"`
}

type PaymentStats struct {
	Total         int     `json:"total"`
	Success       int     `json:"success"`
	SuccessVolume float64 `json:"success_volume"`
	Refunded      int     `json:"refunded"`
}

type ComplaintStats struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Responded int `json:"responded"`
}

type TicketStats struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

type MilestoneStats struct {
	Due        int     `json:"due"`
	Paid       int     `json:"paid"`
	PaidAmount float64 `json:"paid_amount"`
}

// BIStatsResult aggregates every BI page figure for the selected range.
type BIStatsResult struct {
	Requests    RequestStats    `json:"requests"`
	QuickOrders QuickOrderStats `json:"quick_orders"`
	Quotations  QuotationStats  `json:"quotations"`
	Contracts   int             `json:"contracts"`
	Projects    ProjectStats    `json:"projects"`
	Invoices    InvoiceStats    `json:"invoices"`
	Payments    PaymentStats    `json:"payments"`
	Complaints  ComplaintStats  `json:"complaints"`
	Tickets     TicketStats     `json:"tickets"`
	Milestones  MilestoneStats  `json:"milestones"`
	ActiveChats int             `json:"active_chats"`
	FromDate    string          `json:"from_date"`
	ToDate      string          `json:"to_date"`
}

// DashboardSummary is the landing page's unfiltered totals block.
type DashboardSummary struct {
	TotalUsers       int     `json:"total_users"`
	TotalClients     int     `json:"total_clients"`
	TotalContractors int     `json:"total_contractors"`
	TotalRequests    int     `json:"total_requests"`
	OpenRequests     int     `json:"open_requests"`
	TotalQuotations  int     `json:"total_quotations"`
	TotalContracts   int     `json:"total_contracts"`
	ActiveProjects   int     `json:"active_projects"`
	TotalRevenue     float64 `json:"total_revenue"`
	OpenComplaints   int     `json:"open_complaints"`
	OpenTickets      int     `json:"open_tickets"`
}
