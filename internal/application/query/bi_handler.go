package query

import (
	"context"
	"fmt"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/repository"
)

// BIStatsHandler computes the BI page statistics from full collections,
// filtering and grouping in memory.
type BIStatsHandler struct {
	dir repository.Directory
}

func NewBIStatsHandler(dir repository.Directory) *BIStatsHandler {
	return &BIStatsHandler{dir: dir}
}

func (h *BIStatsHandler) Handle(ctx context.Context, q GetBIStats) (*BIStatsResult, error) {
	dr := NewDateRange(q.From, q.To)

	result := &BIStatsResult{
		FromDate: dr.From.Format("2006-01-02"),
		ToDate:   dr.To.Format("2006-01-02"),
	}

	if err := h.collectRequests(ctx, dr, result); err != nil {
		return nil, err
	}
	if err := h.collectQuotations(ctx, dr, result); err != nil {
		return nil, err
	}
	if err := h.collectBilling(ctx, dr, result); err != nil {
		return nil, err
	}
	if err := h.collectSupport(ctx, dr, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *BIStatsHandler) collectRequests(ctx context.Context, dr DateRange, result *BIStatsResult) error {
	requests, err := h.dir.ListRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to get requests: %w", err)
	}
	for _, r := range requests {
		if !dr.ContainsRaw(requestDate(r)) {
			continue
		}
		result.Requests.Total++
		switch r.Status {
		case entity.RequestPending, entity.RequestInReview:
			result.Requests.Pending++
		case entity.RequestAccepted:
			result.Requests.Accepted++
		case entity.RequestInProgress:
			result.Requests.InProgress++
		case entity.RequestCompleted:
			result.Requests.Completed++
		case entity.RequestCancelled:
			result.Requests.Cancelled++
		}
	}

	quickOrders, err := h.dir.ListQuickOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to get quick orders: %w", err)
	}
	for _, o := range quickOrders {
		if !dr.ContainsRaw(quickOrderDate(o)) {
			continue
		}
		result.QuickOrders.Total++
		switch o.Status {
		case entity.QuickOrderSubmitted:
			result.QuickOrders.Submitted++
		case entity.QuickOrderCompleted:
			result.QuickOrders.Completed++
		case entity.QuickOrderCancelled:
			result.QuickOrders.Cancelled++
		}
	}
	return nil
}

func (h *BIStatsHandler) collectQuotations(ctx context.Context, dr DateRange, result *BIStatsResult) error {
	quotations, err := h.dir.ListQuotations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get quotations: %w", err)
	}
	for _, q := range quotations {
		if !dr.ContainsRaw(quotationDate(q)) {
			continue
		}
		result.Quotations.Total++
		switch q.Status {
		case entity.QuotationPending:
			result.Quotations.Pending++
		case entity.QuotationAccepted:
			result.Quotations.Accepted++
		case entity.QuotationRejected, entity.QuotationWithdrawn:
			result.Quotations.Rejected++
		}
	}

	contracts, err := h.dir.ListContracts(ctx)
	if err != nil {
		return fmt.Errorf("failed to get contracts: %w", err)
	}
	for _, c := range contracts {
		if dr.ContainsRaw(contractDate(c)) {
			result.Contracts++
		}
	}

	projects, err := h.dir.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}
	for _, p := range projects {
		if !dr.ContainsRaw(projectDate(p)) {
			continue
		}
		result.Projects.Total++
		switch p.Status {
		case entity.ProjectActive:
			result.Projects.Active++
		case entity.ProjectCompleted:
			result.Projects.Completed++
		}
	}
	return nil
}

func (h *BIStatsHandler) collectBilling(ctx context.Context, dr DateRange, result *BIStatsResult) error {
	invoices, err := h.dir.ListInvoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to get invoices: %w", err)
	}
	for _, inv := range invoices {
		if !dr.ContainsRaw(invoiceDate(inv)) {
			continue
		}
		result.Invoices.Total++
		if inv.Status == entity.InvoicePaid {
			result.Invoices.Paid++
			result.Invoices.Revenue += inv.TotalAmount
		}
	}

	payments, err := h.dir.ListPayments(ctx)
	if err != nil {
		return fmt.Errorf("failed to get payments: %w", err)
	}
	for _, p := range payments {
		if !dr.ContainsRaw(paymentDate(p)) {
			continue
		}
		result.Payments.Total++
		switch p.Status {
		case entity.PaymentSuccess:
			result.Payments.Success++
			result.Payments.SuccessVolume += p.Amount
		case entity.PaymentRefunded:
			result.Payments.Refunded++
		}
	}

	milestones, err := h.dir.ListMilestones(ctx)
	if err != nil {
		return fmt.Errorf("failed to get milestones: %w", err)
	}
	for _, m := range milestones {
		if !dr.ContainsRaw(milestoneDate(m)) {
			continue
		}
		switch m.Status {
		case entity.MilestoneDue:
			result.Milestones.Due++
		case entity.MilestonePaid:
			result.Milestones.Paid++
			result.Milestones.PaidAmount += m.Amount
		}
	}
	return nil
}

func (h *BIStatsHandler) collectSupport(ctx context.Context, dr DateRange, result *BIStatsResult) error {
	complaints, err := h.dir.ListComplaints(ctx)
	if err != nil {
		return fmt.Errorf("failed to get complaints: %w", err)
	}
	for _, c := range complaints {
		if !dr.ContainsRaw(complaintDate(c)) {
			continue
		}
		result.Complaints.Total++
		switch c.Status {
		case entity.ComplaintOpen, entity.ComplaintEscalated:
			result.Complaints.Open++
		case entity.ComplaintResponded, entity.ComplaintResolved:
			result.Complaints.Responded++
		}
	}

	tickets, err := h.dir.ListTickets(ctx)
	if err != nil {
		return fmt.Errorf("failed to get tickets: %w", err)
	}
	for _, t := range tickets {
		if !dr.ContainsRaw(ticketDate(t)) {
			continue
		}
		result.Tickets.Total++
		if t.Status == entity.TicketOpen || t.Status == entity.TicketInProgress {
			result.Tickets.Open++
		}
	}

	threads, err := h.dir.ListThreads(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chat threads: %w", err)
	}
	for _, t := range threads {
		if dr.ContainsRaw(threadDate(t)) {
			result.ActiveChats++
		}
	}
	return nil
}
