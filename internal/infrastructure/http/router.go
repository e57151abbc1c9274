package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"binaa-admin/pkg/middleware"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	User      *HTTPUserController
	Request   *HTTPRequestController
	Quotation *HTTPQuotationController
	Contract  *HTTPContractController
	Project   *HTTPProjectController
	Billing   *HTTPBillingController
	Support   *HTTPSupportController
	Chat      *HTTPChatController
	Catalog   *HTTPCatalogController
	Promo     *HTTPPromoController
	BI        *HTTPBIController
	Dashboard *HTTPDashboardController
}

// RouterConfig tunes the middleware chain.
type RouterConfig struct {
	Logger         zerolog.Logger
	AllowedOrigins string
	RateLimit      int
}

// NewRouter assembles the admin API route tree.
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimit, time.Minute).Middleware)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"binaa-admin"}`))
	})

	r.Get("/users", c.User.ListUsers)
	r.Get("/users/clients/{id}", c.User.GetClient)
	r.Get("/users/contractors/{id}", c.User.GetContractor)

	r.Get("/requests", c.Request.ListRequests)
	r.Get("/requests/regular/{id}", c.Request.GetRequest)
	r.Get("/requests/quick/{id}", c.Request.GetQuickOrder)

	r.Get("/quotations", c.Quotation.ListQuotations)
	r.Get("/quotations/{id}", c.Quotation.GetQuotation)

	r.Get("/contracts", c.Contract.ListContracts)
	r.Get("/contracts/{id}", c.Contract.GetContract)
	r.Get("/milestones", c.Contract.ListMilestones)
	r.Get("/milestones/{id}", c.Contract.GetMilestone)

	r.Get("/projects", c.Project.ListProjects)
	r.Get("/projects/{id}", c.Project.GetProject)

	r.Get("/invoices", c.Billing.ListInvoices)
	r.Get("/invoices/{id}", c.Billing.GetInvoice)
	r.Get("/payments", c.Billing.ListPayments)
	r.Get("/payments/{id}", c.Billing.GetPayment)
	r.Get("/settlements", c.Billing.ListSettlements)
	r.Get("/settlements/{id}", c.Billing.GetSettlement)

	r.Get("/complaints", c.Support.ListComplaints)
	r.Get("/complaints/{id}", c.Support.GetComplaint)
	r.Post("/complaints/{id}/response", c.Support.RespondToComplaint)
	r.Get("/support-tickets", c.Support.ListTickets)
	r.Get("/support-tickets/{id}", c.Support.GetTicket)
	r.Get("/notifications", c.Support.ListNotifications)
	r.Get("/notifications/{id}", c.Support.GetNotification)

	// Fixed chat paths register before the {id} route so chi never treats
	// "settings" or "bans" as a thread id.
	r.Get("/chats", c.Chat.ListThreads)
	r.Get("/chats/settings", c.Chat.GetSettings)
	r.Put("/chats/settings", c.Chat.UpdateSettings)
	r.Get("/chats/bans", c.Chat.ListBans)
	r.Post("/chats/bans", c.Chat.AddBan)
	r.Delete("/chats/bans/{id}", c.Chat.RemoveBan)
	r.Get("/chats/{id}", c.Chat.GetThread)

	r.Get("/services", c.Catalog.ListCatalog)
	r.Get("/services/groups/{id}", c.Catalog.GetGroup)
	r.Get("/services/categories/{id}", c.Catalog.GetCategory)
	r.Get("/services/subcategories/{id}", c.Catalog.GetSubcategory)
	r.Get("/services/quick/{id}", c.Catalog.GetQuickService)

	r.Get("/promo-codes", c.Promo.ListPromoCodes)
	r.Post("/promo-codes", c.Promo.CreatePromoCode)
	r.Post("/promo-codes/{id}/toggle", c.Promo.TogglePromoCode)

	r.Get("/bi", c.BI.GetStats)
	r.Get("/bi/charts", c.BI.GetCharts)
	r.Get("/bi/export", c.BI.Export)

	r.Get("/dashboard", c.Dashboard.GetSummary)
	r.Get("/activity", c.Dashboard.GetActivity)

	return r
}
