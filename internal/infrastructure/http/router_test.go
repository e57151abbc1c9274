package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/application/query"
	"binaa-admin/internal/application/services"
	"binaa-admin/internal/infrastructure/activity"
	"binaa-admin/internal/infrastructure/bus"
	"binaa-admin/internal/infrastructure/kv"
	"binaa-admin/internal/infrastructure/memory"
	"binaa-admin/pkg/response"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	directory := memory.NewDirectory(0)
	eventBus := bus.NewInMemoryEventBus()
	store := kv.NewMemoryStore()

	feed := activity.NewFeed(50)
	feed.Register(eventBus)

	controllers := Controllers{
		User:      NewHTTPUserController(directory),
		Request:   NewHTTPRequestController(directory),
		Quotation: NewHTTPQuotationController(directory),
		Contract:  NewHTTPContractController(directory),
		Project:   NewHTTPProjectController(directory),
		Billing:   NewHTTPBillingController(directory),
		Support:   NewHTTPSupportController(directory, services.NewComplaintService(directory, eventBus)),
		Chat: NewHTTPChatController(directory,
			services.NewChatBanService(store, eventBus),
			services.NewChatSettingsService(store, eventBus)),
		Catalog:   NewHTTPCatalogController(directory),
		Promo:     NewHTTPPromoController(services.NewPromoCodeService(store, eventBus)),
		BI:        NewHTTPBIController(query.NewBIStatsHandler(directory), directory),
		Dashboard: NewHTTPDashboardController(query.NewDashboardSummaryHandler(directory), feed),
	}

	return NewRouter(controllers, RouterConfig{
		Logger:         zerolog.Nop(),
		AllowedOrigins: "*",
		RateLimit:      1000,
	})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, response.ApiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.ApiResponse
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestListEndpointsReturnEnvelope(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		path  string
		total int
	}{
		{"/users", 6},
		{"/quotations", 5},
		{"/contracts", 2},
		{"/projects", 2},
		{"/invoices", 5},
		{"/payments", 5},
		{"/settlements", 2},
		{"/complaints", 3},
		{"/support-tickets", 3},
		{"/notifications", 3},
		{"/milestones", 5},
		{"/chats", 2},
	}

	for _, tt := range paths {
		t.Run(tt.path, func(t *testing.T) {
			rec, envelope := doRequest(t, router, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, envelope.Success)
			assert.NotEmpty(t, envelope.RequestID)
			require.NotNil(t, envelope.Meta)
			assert.Equal(t, tt.total, envelope.Meta.Total)
		})
	}
}

func TestDetailNotFoundEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/projects/prj-999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestQuotationDetailCarriesWarnings(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/quotations/quo-005", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	warnings, ok := data["warnings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, warnings, 1)
}

func TestPromoCodeLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"title":"خصم الافتتاح","code":"ksa99","discount_rate":15}`)
	rec, envelope := doRequest(t, router, http.MethodPost, "/promo-codes", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "KSA99", data["code"])
	promoID := data["id"].(string)

	// duplicate in different case conflicts
	rec, envelope = doRequest(t, router, http.MethodPost, "/promo-codes", []byte(`{"title":"x","code":"KSA99","discount_rate":10}`))
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)

	rec, envelope = doRequest(t, router, http.MethodPost, "/promo-codes/"+promoID+"/toggle", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok = envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["is_active"])

	// the admin action lands on the activity feed
	rec, envelope = doRequest(t, router, http.MethodGet, "/activity", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 2, envelope.Meta.Total)
}

func TestChatSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPut, "/chats/settings", []byte(`{"disable_chat_completely":true}`))
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	effective, ok := data["effective"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, effective["hide_chat_during_offers"])
	assert.Equal(t, true, effective["hide_chat_after_award"])

	stored, ok := data["stored"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, stored["hide_chat_during_offers"])
}

func TestComplaintResponseOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/complaints/cmp-001/response", []byte(`{"response":"تمت المعالجة"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RESPONDED", data["status"])

	// empty response rejected
	rec, envelope = doRequest(t, router, http.MethodPost, "/complaints/cmp-001/response", []byte(`{"response":"  "}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestBIStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/bi?from=2024-01-01&to=2024-12-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	requests, ok := data["requests"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), requests["total"])

	// invalid date rejected
	rec, envelope = doRequest(t, router, http.MethodGet, "/bi?from=notadate", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)

	// reversed range rejected
	rec, _ = doRequest(t, router, http.MethodGet, "/bi?from=2024-06-01&to=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBIChartsRendersHTML(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/bi/charts?from=2024-03-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestBIExportProducesWorkbook(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/bi/export?from=2024-01-01&to=2024-12-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bi-report-")
	assert.NotZero(t, rec.Body.Len())
}

func TestChatBanRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/chats/bans", []byte(`{"client_id":"cl-002","contractor_id":"co-001"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	banID := data["id"].(string)

	// the thread between the banned pair reports it
	rec, envelope = doRequest(t, router, http.MethodGet, "/chats/cht-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok = envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["banned"])

	rec, _ = doRequest(t, router, http.MethodDelete, "/chats/bans/"+banID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
