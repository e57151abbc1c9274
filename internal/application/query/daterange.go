package query

import (
	"time"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/pkg/format"
)

// DateRange is an inclusive calendar-day range. From is normalized to the
// start of its day and To to 23:59:59.999999999, so same-day records count
// regardless of their time component.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalizes the endpoints to day boundaries.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{
		From: time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location()),
		To:   time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location()),
	}
}

// ContainsRaw reports whether a raw date string falls inside the range.
// Unparsable values are excluded, never an error.
func (r DateRange) ContainsRaw(value string) bool {
	if value == "" {
		return false
	}
	t, err := format.ParseFlexible(value)
	if err != nil {
		return false
	}
	return r.Contains(t)
}

// Contains reports whether an instant falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Per-entity date-field selection. The field is not uniform across entities:
// most use created_at, milestones key on due_date and chat threads on
// updated_at with a created_at fallback.

func requestDate(r entity.ServiceRequest) string      { return r.CreatedAt }
func quickOrderDate(o entity.QuickServiceOrder) string { return o.CreatedAt }
func quotationDate(q entity.Quotation) string         { return q.CreatedAt }
func contractDate(c entity.Contract) string           { return c.CreatedAt }
func projectDate(p entity.Project) string             { return p.CreatedAt }
func invoiceDate(i entity.Invoice) string             { return i.CreatedAt }
func complaintDate(c entity.Complaint) string         { return c.CreatedAt }
func paymentDate(p entity.Payment) string             { return p.CreatedAt }
func ticketDate(t entity.SupportTicket) string        { return t.CreatedAt }
func notificationDate(n entity.Notification) string   { return n.CreatedAt }
func milestoneDate(m entity.Milestone) string         { return m.DueDate }

func threadDate(t entity.ChatThread) string {
	if t.UpdatedAt != "" {
		return t.UpdatedAt
	}
	return t.CreatedAt
}
