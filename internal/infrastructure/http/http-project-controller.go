package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/status"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPProjectController handles HTTP requests for projects
type HTTPProjectController struct {
	directory repository.Directory
}

// NewHTTPProjectController creates a new HTTP project controller
func NewHTTPProjectController(directory repository.Directory) *HTTPProjectController {
	return &HTTPProjectController{directory: directory}
}

// ListProjects handles GET /projects
func (c *HTTPProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := c.directory.ListProjects(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, projects, len(projects))
}

// GetProject handles GET /projects/{id}
func (c *HTTPProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := c.directory.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"project":      project,
		"status_badge": status.Resolve(string(project.Status)),
	}
	response.SendSuccess(w, r, responseData)
}
