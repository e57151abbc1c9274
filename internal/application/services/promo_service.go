package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/event"
	"binaa-admin/internal/infrastructure/bus"
	"binaa-admin/internal/infrastructure/kv"
	"binaa-admin/pkg/errors"
)

// PromoCodeService manages marketing discount codes
type PromoCodeService struct {
	store    kv.Store
	eventBus bus.EventBus
	validate *validator.Validate
}

// NewPromoCodeService creates a new promo code service
func NewPromoCodeService(store kv.Store, eventBus bus.EventBus) *PromoCodeService {
	return &PromoCodeService{
		store:    store,
		eventBus: eventBus,
		validate: validator.New(),
	}
}

// CreatePromoCodeRequest represents a promo code creation request
type CreatePromoCodeRequest struct {
	Title        string  `json:"title" validate:"required"`
	Code         string  `json:"code" validate:"required"`
	DiscountRate float64 `json:"discount_rate" validate:"required,gt=0,lte=100"`
}

// List returns all stored promo codes, newest first.
func (s *PromoCodeService) List(ctx context.Context) ([]entity.PromoCode, error) {
	return s.load()
}

// Create validates and stores a new promo code. Codes are normalized to
// upper case and must be unique regardless of case. New codes start active.
func (s *PromoCodeService) Create(ctx context.Context, req CreatePromoCodeRequest) (*entity.PromoCode, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(validationMessage(err))
	}

	codes, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range codes {
		if strings.EqualFold(existing.Code, req.Code) {
			return nil, errors.NewConflictError(fmt.Sprintf("promo code %s already exists", req.Code))
		}
	}

	promo := entity.PromoCode{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Code:         req.Code,
		DiscountRate: req.DiscountRate,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Format("2006-01-02T15:04:05"),
	}

	codes = append([]entity.PromoCode{promo}, codes...)
	if err := s.save(codes); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, &event.PromoCodeCreated{
		PromoID:      promo.ID,
		Code:         promo.Code,
		DiscountRate: promo.DiscountRate,
		Timestamp:    time.Now().UTC(),
	})

	return &promo, nil
}

// Toggle flips the active flag of a promo code.
func (s *PromoCodeService) Toggle(ctx context.Context, id string) (*entity.PromoCode, error) {
	codes, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range codes {
		if codes[i].ID != id {
			continue
		}
		codes[i].IsActive = !codes[i].IsActive
		if err := s.save(codes); err != nil {
			return nil, err
		}
		toggled := codes[i]
		s.eventBus.Publish(ctx, &event.PromoCodeToggled{
			PromoID:   toggled.ID,
			Code:      toggled.Code,
			IsActive:  toggled.IsActive,
			Timestamp: time.Now().UTC(),
		})
		return &toggled, nil
	}

	return nil, errors.NewNotFoundError("promo code")
}

func (s *PromoCodeService) load() ([]entity.PromoCode, error) {
	raw, ok, err := s.store.Get(kv.KeyPromoCodes)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to read promo codes: %v", err))
	}
	if !ok {
		return []entity.PromoCode{}, nil
	}

	var codes []entity.PromoCode
	if err := json.Unmarshal(raw, &codes); err != nil {
		// Corrupt blob, start over rather than lock the feature out.
		return []entity.PromoCode{}, nil
	}
	return codes, nil
}

func (s *PromoCodeService) save(codes []entity.PromoCode) error {
	raw, err := json.Marshal(codes)
	if err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to encode promo codes: %v", err))
	}
	if err := s.store.Set(kv.KeyPromoCodes, raw); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to write promo codes: %v", err))
	}
	return nil
}
