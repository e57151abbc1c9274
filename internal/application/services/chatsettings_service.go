package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/event"
	"binaa-admin/internal/infrastructure/bus"
	"binaa-admin/internal/infrastructure/kv"
	"binaa-admin/pkg/errors"
)

// ChatSettingsService manages the global chat feature toggles
type ChatSettingsService struct {
	store    kv.Store
	eventBus bus.EventBus
}

// NewChatSettingsService creates a new chat settings service
func NewChatSettingsService(store kv.Store, eventBus bus.EventBus) *ChatSettingsService {
	return &ChatSettingsService{
		store:    store,
		eventBus: eventBus,
	}
}

// UpdateChatSettingsRequest represents a chat settings update
type UpdateChatSettingsRequest struct {
	HideChatDuringOffers  bool `json:"hide_chat_during_offers"`
	HideChatAfterAward    bool `json:"hide_chat_after_award"`
	DisableChatCompletely bool `json:"disable_chat_completely"`
}

// Get returns the stored toggles. Missing storage means everything enabled.
func (s *ChatSettingsService) Get(ctx context.Context) (entity.ChatSettings, error) {
	raw, ok, err := s.store.Get(kv.KeyChatSettings)
	if err != nil {
		return entity.ChatSettings{}, errors.NewInternalError(fmt.Sprintf("failed to read chat settings: %v", err))
	}
	if !ok {
		return entity.ChatSettings{}, nil
	}

	var settings entity.ChatSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return entity.ChatSettings{}, nil
	}
	return settings, nil
}

// Update replaces the stored toggles wholesale.
func (s *ChatSettingsService) Update(ctx context.Context, req UpdateChatSettingsRequest) (entity.ChatSettings, error) {
	settings := entity.ChatSettings{
		HideChatDuringOffers:  req.HideChatDuringOffers,
		HideChatAfterAward:    req.HideChatAfterAward,
		DisableChatCompletely: req.DisableChatCompletely,
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return entity.ChatSettings{}, errors.NewInternalError(fmt.Sprintf("failed to encode chat settings: %v", err))
	}
	if err := s.store.Set(kv.KeyChatSettings, raw); err != nil {
		return entity.ChatSettings{}, errors.NewInternalError(fmt.Sprintf("failed to write chat settings: %v", err))
	}

	s.eventBus.Publish(ctx, &event.ChatSettingsUpdated{
		DisableChatCompletely: settings.DisableChatCompletely,
		Timestamp:             time.Now().UTC(),
	})

	return settings, nil
}
