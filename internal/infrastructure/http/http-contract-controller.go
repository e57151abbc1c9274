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

// HTTPContractController handles HTTP requests for contracts and their
// payment milestones
type HTTPContractController struct {
	directory repository.Directory
}

// NewHTTPContractController creates a new HTTP contract controller
func NewHTTPContractController(directory repository.Directory) *HTTPContractController {
	return &HTTPContractController{directory: directory}
}

// ListContracts handles GET /contracts
func (c *HTTPContractController) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := c.directory.ListContracts(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, contracts, len(contracts))
}

// GetContract handles GET /contracts/{id}
func (c *HTTPContractController) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := c.directory.GetContract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"contract":        contract,
		"total_formatted": format.FormatSAR(contract.TotalPrice),
		"warnings":        query.ContractWarnings(*contract),
	}
	response.SendSuccess(w, r, responseData)
}

// ListMilestones handles GET /milestones
func (c *HTTPContractController) ListMilestones(w http.ResponseWriter, r *http.Request) {
	milestones, err := c.directory.ListMilestones(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, milestones, len(milestones))
}

// GetMilestone handles GET /milestones/{id}
func (c *HTTPContractController) GetMilestone(w http.ResponseWriter, r *http.Request) {
	milestone, err := c.directory.GetMilestone(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"milestone":        milestone,
		"status_badge":     status.Resolve(string(milestone.Status)),
		"amount_formatted": format.FormatSAR(milestone.Amount),
		"due_date":         format.FormatDate(milestone.DueDate),
	}
	response.SendSuccess(w, r, responseData)
}
