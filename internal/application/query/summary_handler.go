package query

import (
	"context"
	"fmt"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/repository"
)

// DashboardSummaryHandler computes the unfiltered landing page totals.
type DashboardSummaryHandler struct {
	dir repository.Directory
}

func NewDashboardSummaryHandler(dir repository.Directory) *DashboardSummaryHandler {
	return &DashboardSummaryHandler{dir: dir}
}

func (h *DashboardSummaryHandler) Handle(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	users, err := h.dir.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	summary.TotalUsers = len(users)
	for _, u := range users {
		switch u.Role {
		case entity.RoleClient:
			summary.TotalClients++
		case entity.RoleContractor:
			summary.TotalContractors++
		}
	}

	requests, err := h.dir.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}
	summary.TotalRequests = len(requests)
	for _, r := range requests {
		switch r.Status {
		case entity.RequestPending, entity.RequestInReview, entity.RequestAccepted, entity.RequestInProgress:
			summary.OpenRequests++
		}
	}

	quotations, err := h.dir.ListQuotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotations: %w", err)
	}
	summary.TotalQuotations = len(quotations)

	contracts, err := h.dir.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contracts: %w", err)
	}
	summary.TotalContracts = len(contracts)

	projects, err := h.dir.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	for _, p := range projects {
		if p.Status == entity.ProjectActive {
			summary.ActiveProjects++
		}
	}

	invoices, err := h.dir.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	for _, inv := range invoices {
		if inv.Status == entity.InvoicePaid {
			summary.TotalRevenue += inv.TotalAmount
		}
	}

	complaints, err := h.dir.ListComplaints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaints: %w", err)
	}
	for _, c := range complaints {
		if c.Status == entity.ComplaintOpen || c.Status == entity.ComplaintEscalated {
			summary.OpenComplaints++
		}
	}

	tickets, err := h.dir.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	for _, t := range tickets {
		if t.Status == entity.TicketOpen || t.Status == entity.TicketInProgress {
			summary.OpenTickets++
		}
	}

	return summary, nil
}
