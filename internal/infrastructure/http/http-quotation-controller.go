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

// HTTPQuotationController handles HTTP requests for quotations
type HTTPQuotationController struct {
	directory repository.Directory
}

// NewHTTPQuotationController creates a new HTTP quotation controller
func NewHTTPQuotationController(directory repository.Directory) *HTTPQuotationController {
	return &HTTPQuotationController{directory: directory}
}

// ListQuotations handles GET /quotations
func (c *HTTPQuotationController) ListQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := c.directory.ListQuotations(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, quotations, len(quotations))
}

// GetQuotation handles GET /quotations/{id}
func (c *HTTPQuotationController) GetQuotation(w http.ResponseWriter, r *http.Request) {
	quotation, err := c.directory.GetQuotation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"quotation":       quotation,
		"status_badge":    status.Resolve(string(quotation.Status)),
		"price_formatted": format.FormatSAR(quotation.Price),
		"warnings":        query.QuotationWarnings(*quotation),
	}
	response.SendSuccess(w, r, responseData)
}
