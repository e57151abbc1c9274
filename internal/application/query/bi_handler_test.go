package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/infrastructure/memory"
)

func TestBIStatsOverFullYear(t *testing.T) {
	dir := memory.NewDirectory(0)
	handler := NewBIStatsHandler(dir)

	result, err := handler.Handle(context.Background(), GetBIStats{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Requests.Total)
	assert.Equal(t, 2, result.Requests.Pending)
	assert.Equal(t, 1, result.Requests.Accepted)
	assert.Equal(t, 1, result.Requests.Completed)
	assert.Equal(t, 1, result.Requests.Cancelled)

	assert.Equal(t, 3, result.QuickOrders.Total)
	assert.Equal(t, 1, result.QuickOrders.Submitted)
	assert.Equal(t, 1, result.QuickOrders.Completed)
	assert.Equal(t, 1, result.QuickOrders.Cancelled)

	assert.Equal(t, 5, result.Quotations.Total)
	assert.Equal(t, 2, result.Quotations.Pending)
	assert.Equal(t, 1, result.Quotations.Accepted)
	// rejected groups REJECTED and WITHDRAWN together
	assert.Equal(t, 2, result.Quotations.Rejected)

	assert.Equal(t, 2, result.Contracts)
	assert.Equal(t, 2, result.Projects.Total)
	assert.Equal(t, 1, result.Projects.Active)
	assert.Equal(t, 1, result.Projects.Completed)

	assert.Equal(t, 5, result.Invoices.Total)
	assert.Equal(t, 2, result.Invoices.Paid)
	assert.InDelta(t, 26450.0, result.Invoices.Revenue, 0.001)

	assert.Equal(t, 5, result.Payments.Total)
	assert.Equal(t, 2, result.Payments.Success)
	assert.InDelta(t, 26450.0, result.Payments.SuccessVolume, 0.001)
	assert.Equal(t, 1, result.Payments.Refunded)

	// milestones key on due date
	assert.Equal(t, 1, result.Milestones.Due)
	assert.Equal(t, 3, result.Milestones.Paid)
	assert.InDelta(t, 31000.0, result.Milestones.PaidAmount, 0.001)

	assert.Equal(t, 3, result.Complaints.Total)
	assert.Equal(t, 2, result.Complaints.Open)
	assert.Equal(t, 1, result.Complaints.Responded)

	assert.Equal(t, 3, result.Tickets.Total)
	assert.Equal(t, 2, result.Tickets.Open)

	assert.Equal(t, 2, result.ActiveChats)

	assert.Equal(t, "2024-01-01", result.FromDate)
	assert.Equal(t, "2024-12-31", result.ToDate)
}

func TestBIStatsNarrowRange(t *testing.T) {
	dir := memory.NewDirectory(0)
	handler := NewBIStatsHandler(dir)

	result, err := handler.Handle(context.Background(), GetBIStats{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// only the requests created in March
	assert.Equal(t, 3, result.Requests.Total)
	assert.Equal(t, 1, result.Requests.Pending)
	assert.Equal(t, 1, result.Requests.Accepted)
	assert.Equal(t, 0, result.Requests.Completed)
	assert.Equal(t, 1, result.Requests.Cancelled)

	// one invoice paid in March
	assert.Equal(t, 1, result.Invoices.Paid)
	assert.InDelta(t, 17250.0, result.Invoices.Revenue, 0.001)

	// chat thread with a March update plus one created in March
	assert.Equal(t, 2, result.ActiveChats)
}

func TestBIStatsEmptyRange(t *testing.T) {
	dir := memory.NewDirectory(0)
	handler := NewBIStatsHandler(dir)

	result, err := handler.Handle(context.Background(), GetBIStats{
		From: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Requests.Total)
	assert.Equal(t, 0, result.Invoices.Total)
	assert.InDelta(t, 0.0, result.Invoices.Revenue, 0.001)
	assert.Equal(t, 0, result.ActiveChats)
}

func TestDashboardSummary(t *testing.T) {
	dir := memory.NewDirectory(0)
	handler := NewDashboardSummaryHandler(dir)

	summary, err := handler.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalUsers)
	assert.Equal(t, 3, summary.TotalClients)
	assert.Equal(t, 3, summary.TotalContractors)
	assert.Equal(t, 5, summary.TotalRequests)
	// PENDING, IN_REVIEW and ACCEPTED requests count as open
	assert.Equal(t, 3, summary.OpenRequests)
	assert.Equal(t, 5, summary.TotalQuotations)
	assert.Equal(t, 2, summary.TotalContracts)
	assert.Equal(t, 1, summary.ActiveProjects)
	assert.InDelta(t, 26450.0, summary.TotalRevenue, 0.001)
	assert.Equal(t, 2, summary.OpenComplaints)
	assert.Equal(t, 2, summary.OpenTickets)
}
