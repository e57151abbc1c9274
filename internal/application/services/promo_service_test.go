package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/infrastructure/bus"
	"binaa-admin/internal/infrastructure/kv"
	"binaa-admin/pkg/errors"
)

func newPromoService() *PromoCodeService {
	return NewPromoCodeService(kv.NewMemoryStore(), bus.NewInMemoryEventBus())
}

func TestCreatePromoCodeNormalizesCode(t *testing.T) {
	svc := newPromoService()

	promo, err := svc.Create(context.Background(), CreatePromoCodeRequest{
		Title:        "خصم الافتتاح",
		Code:         "  ksa99 ",
		DiscountRate: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "KSA99", promo.Code)
	assert.True(t, promo.IsActive)
	assert.NotEmpty(t, promo.ID)
	assert.NotEmpty(t, promo.CreatedAt)
}

func TestCreatePromoCodeValidation(t *testing.T) {
	svc := newPromoService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreatePromoCodeRequest
	}{
		{"missing title", CreatePromoCodeRequest{Code: "SAVE10", DiscountRate: 10}},
		{"missing code", CreatePromoCodeRequest{Title: "Save", DiscountRate: 10}},
		{"zero rate", CreatePromoCodeRequest{Title: "Save", Code: "SAVE10", DiscountRate: 0}},
		{"rate over 100", CreatePromoCodeRequest{Title: "Save", Code: "SAVE10", DiscountRate: 150}},
		{"negative rate", CreatePromoCodeRequest{Title: "Save", Code: "SAVE10", DiscountRate: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.Error(t, err)

			appErr, ok := err.(*errors.ApplicationError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestCreatePromoCodeDuplicateIsCaseInsensitive(t *testing.T) {
	svc := newPromoService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePromoCodeRequest{Title: "Launch", Code: "KSA99", DiscountRate: 15})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreatePromoCodeRequest{Title: "Launch again", Code: "ksa99", DiscountRate: 20})
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)

	codes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 1)
}

func TestTogglePromoCode(t *testing.T) {
	svc := newPromoService()
	ctx := context.Background()

	promo, err := svc.Create(ctx, CreatePromoCodeRequest{Title: "Launch", Code: "KSA99", DiscountRate: 15})
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, promo.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.Toggle(ctx, promo.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestTogglePromoCodeNotFound(t *testing.T) {
	svc := newPromoService()

	_, err := svc.Toggle(context.Background(), "missing-id")
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPromoCodesPersistAcrossServiceInstances(t *testing.T) {
	store := kv.NewMemoryStore()
	eventBus := bus.NewInMemoryEventBus()
	ctx := context.Background()

	first := NewPromoCodeService(store, eventBus)
	_, err := first.Create(ctx, CreatePromoCodeRequest{Title: "Launch", Code: "KSA99", DiscountRate: 15})
	require.NoError(t, err)

	second := NewPromoCodeService(store, eventBus)
	codes, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "KSA99", codes[0].Code)
}
