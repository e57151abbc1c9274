// Package memory implements the repository.Directory facade over seeded
// fixture slices. Every call sleeps a configured duration to mimic network
// latency, but honours context cancellation so an abandoned request never
// touches response state.
package memory

import (
	"context"
	"sync"
	"time"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/pkg/errors"
)

// Directory is the in-memory data backend. The only mutation is the
// complaint response, which edits the record in place and is lost on
// restart.
type Directory struct {
	latency time.Duration

	users         []entity.User
	clients       []entity.ClientProfile
	contractors   []entity.ContractorProfile
	requests      []entity.ServiceRequest
	quickOrders   []entity.QuickServiceOrder
	quotations    []entity.Quotation
	contracts     []entity.Contract
	milestones    []entity.Milestone
	projects      []entity.Project
	invoices      []entity.Invoice
	payments      []entity.Payment
	settlements   []entity.Settlement
	complaints    []entity.Complaint
	tickets       []entity.SupportTicket
	notifications []entity.Notification
	threads       []entity.ChatThread
	messages      []entity.ChatMessage
	groups        []entity.ServiceGroup
	categories    []entity.Category
	subcategories []entity.Subcategory
	quickServices []entity.QuickService

	mu sync.RWMutex
}

// NewDirectory seeds the fixture dataset. Latency applies to every call;
// pass 0 in tests.
func NewDirectory(latency time.Duration) *Directory {
	d := &Directory{latency: latency}
	d.seed()
	return d
}

// wait simulates the artificial network delay, aborting early when the
// caller goes away.
func (d *Directory) wait(ctx context.Context) error {
	if d.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *Directory) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.User(nil), d.users...), nil
}

func (d *Directory) GetClient(ctx context.Context, id string) (*entity.ClientProfile, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.clients {
		if d.clients[i].ID == id {
			c := d.clients[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("client")
}

func (d *Directory) GetContractor(ctx context.Context, id string) (*entity.ContractorProfile, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.contractors {
		if d.contractors[i].ID == id {
			c := d.contractors[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("contractor")
}

func (d *Directory) ListRequests(ctx context.Context) ([]entity.ServiceRequest, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.ServiceRequest(nil), d.requests...), nil
}

func (d *Directory) GetRequest(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.requests {
		if d.requests[i].ID == id {
			r := d.requests[i]
			return &r, nil
		}
	}
	return nil, errors.NewNotFoundError("request")
}

func (d *Directory) ListQuickOrders(ctx context.Context) ([]entity.QuickServiceOrder, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.QuickServiceOrder(nil), d.quickOrders...), nil
}

func (d *Directory) GetQuickOrder(ctx context.Context, id string) (*entity.QuickServiceOrder, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.quickOrders {
		if d.quickOrders[i].ID == id {
			o := d.quickOrders[i]
			return &o, nil
		}
	}
	return nil, errors.NewNotFoundError("quick service order")
}

func (d *Directory) ListQuotations(ctx context.Context) ([]entity.Quotation, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Quotation(nil), d.quotations...), nil
}

func (d *Directory) GetQuotation(ctx context.Context, id string) (*entity.Quotation, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.quotations {
		if d.quotations[i].ID == id {
			q := d.quotations[i]
			return &q, nil
		}
	}
	return nil, errors.NewNotFoundError("quotation")
}

func (d *Directory) ListContracts(ctx context.Context) ([]entity.Contract, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Contract(nil), d.contracts...), nil
}

func (d *Directory) GetContract(ctx context.Context, id string) (*entity.Contract, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.contracts {
		if d.contracts[i].ID == id {
			c := d.contracts[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("contract")
}

func (d *Directory) ListMilestones(ctx context.Context) ([]entity.Milestone, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Milestone(nil), d.milestones...), nil
}

func (d *Directory) GetMilestone(ctx context.Context, id string) (*entity.Milestone, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.milestones {
		if d.milestones[i].ID == id {
			m := d.milestones[i]
			return &m, nil
		}
	}
	return nil, errors.NewNotFoundError("milestone")
}

func (d *Directory) ListProjects(ctx context.Context) ([]entity.Project, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Project(nil), d.projects...), nil
}

func (d *Directory) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.projects {
		if d.projects[i].ID == id {
			p := d.projects[i]
			return &p, nil
		}
	}
	return nil, errors.NewNotFoundError("project")
}

func (d *Directory) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Invoice(nil), d.invoices...), nil
}

func (d *Directory) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.invoices {
		if d.invoices[i].ID == id {
			inv := d.invoices[i]
			return &inv, nil
		}
	}
	return nil, errors.NewNotFoundError("invoice")
}

func (d *Directory) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Payment(nil), d.payments...), nil
}

func (d *Directory) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.payments {
		if d.payments[i].ID == id {
			p := d.payments[i]
			return &p, nil
		}
	}
	return nil, errors.NewNotFoundError("payment")
}

func (d *Directory) ListSettlements(ctx context.Context) ([]entity.Settlement, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Settlement(nil), d.settlements...), nil
}

func (d *Directory) GetSettlement(ctx context.Context, id string) (*entity.Settlement, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.settlements {
		if d.settlements[i].ID == id {
			s := d.settlements[i]
			return &s, nil
		}
	}
	return nil, errors.NewNotFoundError("settlement")
}

func (d *Directory) ListComplaints(ctx context.Context) ([]entity.Complaint, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Complaint(nil), d.complaints...), nil
}

func (d *Directory) GetComplaint(ctx context.Context, id string) (*entity.Complaint, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.complaints {
		if d.complaints[i].ID == id {
			c := d.complaints[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("complaint")
}

func (d *Directory) RespondToComplaint(ctx context.Context, id, responseText string) (*entity.Complaint, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.complaints {
		if d.complaints[i].ID == id {
			d.complaints[i].Response = responseText
			d.complaints[i].Status = entity.ComplaintResponded
			d.complaints[i].RespondedAt = time.Now().UTC().Format("2006-01-02T15:04:05")
			c := d.complaints[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("complaint")
}

func (d *Directory) ListTickets(ctx context.Context) ([]entity.SupportTicket, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.SupportTicket(nil), d.tickets...), nil
}

func (d *Directory) GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.tickets {
		if d.tickets[i].ID == id {
			t := d.tickets[i]
			return &t, nil
		}
	}
	return nil, errors.NewNotFoundError("support ticket")
}

func (d *Directory) ListNotifications(ctx context.Context) ([]entity.Notification, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Notification(nil), d.notifications...), nil
}

func (d *Directory) GetNotification(ctx context.Context, id string) (*entity.Notification, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.notifications {
		if d.notifications[i].ID == id {
			n := d.notifications[i]
			return &n, nil
		}
	}
	return nil, errors.NewNotFoundError("notification")
}

func (d *Directory) ListThreads(ctx context.Context) ([]entity.ChatThread, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.ChatThread(nil), d.threads...), nil
}

func (d *Directory) GetThread(ctx context.Context, id string) (*entity.ChatThread, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.threads {
		if d.threads[i].ID == id {
			t := d.threads[i]
			return &t, nil
		}
	}
	return nil, errors.NewNotFoundError("chat thread")
}

func (d *Directory) ListMessages(ctx context.Context, threadID string) ([]entity.ChatMessage, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []entity.ChatMessage
	for _, m := range d.messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (d *Directory) ListGroups(ctx context.Context) ([]entity.ServiceGroup, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.ServiceGroup(nil), d.groups...), nil
}

func (d *Directory) GetGroup(ctx context.Context, id string) (*entity.ServiceGroup, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.groups {
		if d.groups[i].ID == id {
			g := d.groups[i]
			return &g, nil
		}
	}
	return nil, errors.NewNotFoundError("service group")
}

func (d *Directory) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Category(nil), d.categories...), nil
}

// GetCategory attaches the category's subcategories, the one piece of
// cross-referencing the data layer does itself.
func (d *Directory) GetCategory(ctx context.Context, id string) (*entity.CategoryWithSubcategories, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.categories {
		if d.categories[i].ID == id {
			out := entity.CategoryWithSubcategories{Category: d.categories[i]}
			for _, sub := range d.subcategories {
				if sub.CategoryID == id {
					out.Subcategories = append(out.Subcategories, sub)
				}
			}
			return &out, nil
		}
	}
	return nil, errors.NewNotFoundError("category")
}

func (d *Directory) ListSubcategories(ctx context.Context) ([]entity.Subcategory, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.Subcategory(nil), d.subcategories...), nil
}

func (d *Directory) GetSubcategory(ctx context.Context, id string) (*entity.Subcategory, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.subcategories {
		if d.subcategories[i].ID == id {
			s := d.subcategories[i]
			return &s, nil
		}
	}
	return nil, errors.NewNotFoundError("subcategory")
}

func (d *Directory) ListQuickServices(ctx context.Context) ([]entity.QuickService, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entity.QuickService(nil), d.quickServices...), nil
}

func (d *Directory) GetQuickService(ctx context.Context, id string) (*entity.QuickService, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.quickServices {
		if d.quickServices[i].ID == id {
			q := d.quickServices[i]
			return &q, nil
		}
	}
	return nil, errors.NewNotFoundError("quick service")
}
