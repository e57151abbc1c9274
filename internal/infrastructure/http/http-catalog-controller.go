package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/domain/repository"
	"binaa-admin/pkg/format"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPCatalogController handles HTTP requests for the service catalog tree
type HTTPCatalogController struct {
	directory repository.Directory
}

// NewHTTPCatalogController creates a new HTTP catalog controller
func NewHTTPCatalogController(directory repository.Directory) *HTTPCatalogController {
	return &HTTPCatalogController{directory: directory}
}

// ListCatalog handles GET /services, returning every level of the tree.
func (c *HTTPCatalogController) ListCatalog(w http.ResponseWriter, r *http.Request) {
	groups, err := c.directory.ListGroups(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	categories, err := c.directory.ListCategories(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	subcategories, err := c.directory.ListSubcategories(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	quickServices, err := c.directory.ListQuickServices(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"groups":         groups,
		"categories":     categories,
		"subcategories":  subcategories,
		"quick_services": quickServices,
	}
	response.SendSuccess(w, r, responseData)
}

// GetGroup handles GET /services/groups/{id}
func (c *HTTPCatalogController) GetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := c.directory.GetGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, group)
}

// GetCategory handles GET /services/categories/{id}
func (c *HTTPCatalogController) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := c.directory.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, category)
}

// GetSubcategory handles GET /services/subcategories/{id}
func (c *HTTPCatalogController) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	subcategory, err := c.directory.GetSubcategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, subcategory)
}

// GetQuickService handles GET /services/quick/{id}
func (c *HTTPCatalogController) GetQuickService(w http.ResponseWriter, r *http.Request) {
	quickService, err := c.directory.GetQuickService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"quick_service":   quickService,
		"price_formatted": format.FormatSAR(quickService.Price),
	}
	response.SendSuccess(w, r, responseData)
}
