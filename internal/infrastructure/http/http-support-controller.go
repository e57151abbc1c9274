package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/application/services"
	"binaa-admin/internal/domain/repository"
	"binaa-admin/internal/status"
	"binaa-admin/pkg/errors"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPSupportController handles HTTP requests for complaints, support
// tickets and notifications
type HTTPSupportController struct {
	directory        repository.Directory
	complaintService *services.ComplaintService
}

// NewHTTPSupportController creates a new HTTP support controller
func NewHTTPSupportController(directory repository.Directory, complaintService *services.ComplaintService) *HTTPSupportController {
	return &HTTPSupportController{
		directory:        directory,
		complaintService: complaintService,
	}
}

// ListComplaints handles GET /complaints
func (c *HTTPSupportController) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := c.directory.ListComplaints(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, complaints, len(complaints))
}

// GetComplaint handles GET /complaints/{id}
func (c *HTTPSupportController) GetComplaint(w http.ResponseWriter, r *http.Request) {
	complaint, err := c.directory.GetComplaint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	replyBadge := status.ResolveWithLabel("OPEN", "Awaiting Reply")
	if complaint.Response != "" {
		replyBadge = status.ResolveWithLabel("RESPONDED", "Replied")
	}

	responseData := map[string]interface{}{
		"complaint":    complaint,
		"status_badge": status.Resolve(string(complaint.Status)),
		"reply_badge":  replyBadge,
	}
	response.SendSuccess(w, r, responseData)
}

// RespondToComplaint handles POST /complaints/{id}/response
func (c *HTTPSupportController) RespondToComplaint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("Invalid JSON format"))
		return
	}

	complaint, err := c.complaintService.Respond(r.Context(), chi.URLParam(r, "id"), req.Response)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, complaint)
}

// ListTickets handles GET /support-tickets
func (c *HTTPSupportController) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.directory.ListTickets(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, tickets, len(tickets))
}

// GetTicket handles GET /support-tickets/{id}
func (c *HTTPSupportController) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := c.directory.GetTicket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"ticket":         ticket,
		"status_badge":   status.Resolve(string(ticket.Status)),
		"priority_badge": status.Resolve(ticket.Priority),
	}
	response.SendSuccess(w, r, responseData)
}

// ListNotifications handles GET /notifications
func (c *HTTPSupportController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := c.directory.ListNotifications(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, notifications, len(notifications))
}

// GetNotification handles GET /notifications/{id}
func (c *HTTPSupportController) GetNotification(w http.ResponseWriter, r *http.Request) {
	notification, err := c.directory.GetNotification(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, notification)
}
