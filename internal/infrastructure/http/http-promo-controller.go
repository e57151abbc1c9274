package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"binaa-admin/internal/application/services"
	"binaa-admin/pkg/errors"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"
)

// HTTPPromoController handles HTTP requests for promo codes
type HTTPPromoController struct {
	promoService *services.PromoCodeService
}

// NewHTTPPromoController creates a new HTTP promo controller
func NewHTTPPromoController(promoService *services.PromoCodeService) *HTTPPromoController {
	return &HTTPPromoController{promoService: promoService}
}

// ListPromoCodes handles GET /promo-codes
func (c *HTTPPromoController) ListPromoCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := c.promoService.List(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendList(w, r, codes, len(codes))
}

// CreatePromoCode handles POST /promo-codes
func (c *HTTPPromoController) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePromoCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("Invalid JSON format"))
		return
	}

	promo, err := c.promoService.Create(r.Context(), req)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendCreated(w, r, promo)
}

// TogglePromoCode handles POST /promo-codes/{id}/toggle
func (c *HTTPPromoController) TogglePromoCode(w http.ResponseWriter, r *http.Request) {
	promo, err := c.promoService.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, promo)
}
