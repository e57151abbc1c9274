package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/application/query"
	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/status"
	"binaa-admin/pkg/format"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPBillingController handles HTTP requests for invoices, payments and
// settlements
type HTTPBillingController struct {
	directory repository.Directory
}

// NewHTTPBillingController creates a new HTTP billing controller
func NewHTTPBillingController(directory repository.Directory) *HTTPBillingController {
	return &HTTPBillingController{directory: directory}
}

// ListInvoices handles GET /invoices
func (c *HTTPBillingController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := c.directory.ListInvoices(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, invoices, len(invoices))
}

// GetInvoice handles GET /invoices/{id}
func (c *HTTPBillingController) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := c.directory.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"invoice":         invoice,
		"status_badge":    status.Resolve(string(invoice.Status)),
		"zatca_badge":     status.Resolve(string(invoice.ZatcaStatus)),
		"total_formatted": format.FormatSAR(invoice.TotalAmount),
		"warnings":        query.InvoiceWarnings(*invoice),
	}
	response.SendSuccess(w, r, responseData)
}

// ListPayments handles GET /payments
func (c *HTTPBillingController) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := c.directory.ListPayments(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, payments, len(payments))
}

// GetPayment handles GET /payments/{id}
func (c *HTTPBillingController) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := c.directory.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"payment":          payment,
		"status_badge":     status.Resolve(string(payment.Status)),
		"amount_formatted": format.FormatSAR(payment.Amount),
	}
	response.SendSuccess(w, r, responseData)
}

// ListSettlements handles GET /settlements
func (c *HTTPBillingController) ListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := c.directory.ListSettlements(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, settlements, len(settlements))
}

// GetSettlement handles GET /settlements/{id}
func (c *HTTPBillingController) GetSettlement(w http.ResponseWriter, r *http.Request) {
	settlement, err := c.directory.GetSettlement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"settlement":    settlement,
		"status_badge":  status.Resolve(string(settlement.Status)),
		"net_formatted": format.FormatSAR(settlement.NetAmount),
	}
	response.SendSuccess(w, r, responseData)
}
