// Package repository declares the read-side contract every data backend must
// satisfy. Listers always return the full collection; callers filter in
// memory. Getters return a not-found error for unknown ids.
package repository

import (
	"context"

	"binaa-admin/internal/domain/entity"
)

// UserRepository lists marketplace users and resolves role-specific profiles.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetClient(ctx context.Context, id string) (*entity.ClientProfile, error)
	GetContractor(ctx context.Context, id string) (*entity.ContractorProfile, error)
}

// RequestRepository covers both regular requests and quick service orders.
type RequestRepository interface {
	ListRequests(ctx context.Context) ([]entity.ServiceRequest, error)
	GetRequest(ctx context.Context, id string) (*entity.ServiceRequest, error)
	ListQuickOrders(ctx context.Context) ([]entity.QuickServiceOrder, error)
	GetQuickOrder(ctx context.Context, id string) (*entity.QuickServiceOrder, error)
}

type QuotationRepository interface {
	ListQuotations(ctx context.Context) ([]entity.Quotation, error)
	GetQuotation(ctx context.Context, id string) (*entity.Quotation, error)
}

type ContractRepository interface {
	ListContracts(ctx context.Context) ([]entity.Contract, error)
	GetContract(ctx context.Context, id string) (*entity.Contract, error)
	ListMilestones(ctx context.Context) ([]entity.Milestone, error)
	GetMilestone(ctx context.Context, id string) (*entity.Milestone, error)
}

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]entity.Project, error)
	GetProject(ctx context.Context, id string) (*entity.Project, error)
}

type BillingRepository interface {
	ListInvoices(ctx context.Context) ([]entity.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	ListPayments(ctx context.Context) ([]entity.Payment, error)
	GetPayment(ctx context.Context, id string) (*entity.Payment, error)
	ListSettlements(ctx context.Context) ([]entity.Settlement, error)
	GetSettlement(ctx context.Context, id string) (*entity.Settlement, error)
}

// SupportRepository covers complaints, tickets and notifications.
// RespondToComplaint mutates the in-memory record only; nothing is persisted
// across restarts.
type SupportRepository interface {
	ListComplaints(ctx context.Context) ([]entity.Complaint, error)
	GetComplaint(ctx context.Context, id string) (*entity.Complaint, error)
	RespondToComplaint(ctx context.Context, id, responseText string) (*entity.Complaint, error)
	ListTickets(ctx context.Context) ([]entity.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error)
	ListNotifications(ctx context.Context) ([]entity.Notification, error)
	GetNotification(ctx context.Context, id string) (*entity.Notification, error)
}

type ChatRepository interface {
	ListThreads(ctx context.Context) ([]entity.ChatThread, error)
	GetThread(ctx context.Context, id string) (*entity.ChatThread, error)
	ListMessages(ctx context.Context, threadID string) ([]entity.ChatMessage, error)
}

// CatalogRepository navigates the 4-level service tree.
type CatalogRepository interface {
	ListGroups(ctx context.Context) ([]entity.ServiceGroup, error)
	GetGroup(ctx context.Context, id string) (*entity.ServiceGroup, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.CategoryWithSubcategories, error)
	ListSubcategories(ctx context.Context) ([]entity.Subcategory, error)
	GetSubcategory(ctx context.Context, id string) (*entity.Subcategory, error)
	ListQuickServices(ctx context.Context) ([]entity.QuickService, error)
	GetQuickService(ctx context.Context, id string) (*entity.QuickService, error)
}

// Directory is the full admin data facade.
type Directory interface {
	UserRepository
	RequestRepository
	QuotationRepository
	ContractRepository
	ProjectRepository
	BillingRepository
	SupportRepository
	ChatRepository
	CatalogRepository
}
