package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/status"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPUserController handles HTTP requests for the users directory
type HTTPUserController struct {
	directory repository.Directory
}

// NewHTTPUserController creates a new HTTP user controller
func NewHTTPUserController(directory repository.Directory) *HTTPUserController {
	return &HTTPUserController{directory: directory}
}

// ListUsers handles GET /users
func (c *HTTPUserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.directory.ListUsers(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, users, len(users))
}

// GetClient handles GET /users/clients/{id}
func (c *HTTPUserController) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := c.directory.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, client)
}

// GetContractor handles GET /users/contractors/{id}
func (c *HTTPUserController) GetContractor(w http.ResponseWriter, r *http.Request) {
	contractor, err := c.directory.GetContractor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"contractor":         contractor,
		"verification_badge": status.Resolve(string(contractor.VerificationStatus)),
	}
	response.SendSuccess(w, r, responseData)
}
