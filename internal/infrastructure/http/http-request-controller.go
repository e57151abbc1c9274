package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/status"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPRequestController handles HTTP requests for service requests and quick
// service orders
type HTTPRequestController struct {
	directory repository.Directory
}

// NewHTTPRequestController creates a new HTTP request controller
func NewHTTPRequestController(directory repository.Directory) *HTTPRequestController {
	return &HTTPRequestController{directory: directory}
}

// ListRequests handles GET /requests. Both request kinds share the page, so
// the payload carries them side by side.
func (c *HTTPRequestController) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := c.directory.ListRequests(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	quickOrders, err := c.directory.ListQuickOrders(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"regular": requests,
		"quick":   quickOrders,
	}
	response.SendList(w, r, responseData, len(requests)+len(quickOrders))
}

// GetRequest handles GET /requests/regular/{id}
func (c *HTTPRequestController) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, err := c.directory.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"request":       request,
		"status_badge":  status.Resolve(string(request.Status)),
		"urgency_badge": status.Resolve(request.Urgency),
	}
	response.SendSuccess(w, r, responseData)
}

// GetQuickOrder handles GET /requests/quick/{id}
func (c *HTTPRequestController) GetQuickOrder(w http.ResponseWriter, r *http.Request) {
	order, err := c.directory.GetQuickOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"order":        order,
		"status_badge": status.Resolve(string(order.Status)),
	}
	response.SendSuccess(w, r, responseData)
}
