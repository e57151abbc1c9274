package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/application/services"
	"binaa-admin/internal/domain/repository"
	"binaa-admin/pkg/errors"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPChatController handles HTTP requests for chat oversight: threads,
// global settings and the ban list
type HTTPChatController struct {
	directory       repository.Directory
	banService      *services.ChatBanService
	settingsService *services.ChatSettingsService
}

// NewHTTPChatController creates a new HTTP chat controller
func NewHTTPChatController(
	directory repository.Directory,
	banService *services.ChatBanService,
	settingsService *services.ChatSettingsService,
) *HTTPChatController {
	return &HTTPChatController{
		directory:       directory,
		banService:      banService,
		settingsService: settingsService,
	}
}

// ListThreads handles GET /chats
func (c *HTTPChatController) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := c.directory.ListThreads(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, threads, len(threads))
}

// GetThread handles GET /chats/{id}, returning the thread with its messages
// and whether the pair is currently banned.
func (c *HTTPChatController) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := c.directory.GetThread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	messages, err := c.directory.ListMessages(r.Context(), thread.ID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	banned, err := c.banService.IsBanned(r.Context(), thread.ClientID, thread.ContractorID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"thread":   thread,
		"messages": messages,
		"banned":   banned,
	}
	response.SendSuccess(w, r, responseData)
}

// GetSettings handles GET /chats/settings
func (c *HTTPChatController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settingsService.Get(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"stored":    settings,
		"effective": settings.Effective(),
	}
	response.SendSuccess(w, r, responseData)
}

// UpdateSettings handles PUT /chats/settings
func (c *HTTPChatController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateChatSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("Invalid JSON format"))
		return
	}

	settings, err := c.settingsService.Update(r.Context(), req)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	responseData := map[string]interface{}{
		"stored":    settings,
		"effective": settings.Effective(),
	}
	response.SendSuccess(w, r, responseData)
}

// ListBans handles GET /chats/bans
func (c *HTTPChatController) ListBans(w http.ResponseWriter, r *http.Request) {
	bans, err := c.banService.List(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, bans, len(bans))
}

// AddBan handles POST /chats/bans
func (c *HTTPChatController) AddBan(w http.ResponseWriter, r *http.Request) {
	var req services.AddChatBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("Invalid JSON format"))
		return
	}

	ban, err := c.banService.Add(r.Context(), req)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendCreated(w, r, ban)
}

// RemoveBan handles DELETE /chats/bans/{id}
func (c *HTTPChatController) RemoveBan(w http.ResponseWriter, r *http.Request) {
	if err := c.banService.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendNoContent(w, r)
}
