package http

import (
	"fmt"
	"net/http"

	"binaa-admin/internal/application/query"
	"binaa-admin/internal/infrastructure/activity"
	"binaa-admin/pkg/errors"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPDashboardController handles the landing page summary and the admin
// activity feed
type HTTPDashboardController struct {
	summaryHandler *query.DashboardSummaryHandler
	feed           *activity.Feed
}

// NewHTTPDashboardController creates a new HTTP dashboard controller
func NewHTTPDashboardController(summaryHandler *query.DashboardSummaryHandler, feed *activity.Feed) *HTTPDashboardController {
	return &HTTPDashboardController{
		summaryHandler: summaryHandler,
		feed:           feed,
	}
}

// GetSummary handles GET /dashboard
func (c *HTTPDashboardController) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.summaryHandler.Handle(r.Context())
	if err != nil {
		middleware.HandleError(w, r, errors.NewInternalError(fmt.Sprintf("failed to get dashboard summary: %v", err)))
		return
	}
	response.SendSuccess(w, r, summary)
}

// GetActivity handles GET /activity
func (c *HTTPDashboardController) GetActivity(w http.ResponseWriter, r *http.Request) {
	entries := c.feed.Entries()
	response.SendList(w, r, entries, len(entries))
}
