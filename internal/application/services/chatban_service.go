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

// ChatBanService manages the client-contractor chat ban list
type ChatBanService struct {
	store    kv.Store
	eventBus bus.EventBus
	validate *validator.Validate
}

// NewChatBanService creates a new chat ban service
func NewChatBanService(store kv.Store, eventBus bus.EventBus) *ChatBanService {
	return &ChatBanService{
		store:    store,
		eventBus: eventBus,
		validate: validator.New(),
	}
}

// AddChatBanRequest represents a chat ban creation request
type AddChatBanRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ContractorID string `json:"contractor_id" validate:"required"`
}

// List returns all active chat bans.
func (s *ChatBanService) List(ctx context.Context) ([]entity.ChatBan, error) {
	return s.load()
}

// Add bans a client-contractor pair from chatting. The pair is unordered: a
// ban between (a, b) also blocks (b, a), and adding it again is a conflict.
func (s *ChatBanService) Add(ctx context.Context, req AddChatBanRequest) (*entity.ChatBan, error) {
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.ContractorID = strings.TrimSpace(req.ContractorID)

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.NewValidationError(validationMessage(err))
	}

	bans, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range bans {
		if samePair(existing, req.ClientID, req.ContractorID) {
			return nil, errors.NewConflictError(
				fmt.Sprintf("chat between %s and %s is already banned", req.ClientID, req.ContractorID))
		}
	}

	ban := entity.ChatBan{
		ID:           uuid.New().String(),
		ClientID:     req.ClientID,
		ContractorID: req.ContractorID,
		BannedAt:     time.Now().UTC().Format("2006-01-02T15:04:05"),
	}

	bans = append(bans, ban)
	if err := s.save(bans); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, &event.ChatBanAdded{
		BanID:        ban.ID,
		ClientID:     ban.ClientID,
		ContractorID: ban.ContractorID,
		Timestamp:    time.Now().UTC(),
	})

	return &ban, nil
}

// Remove lifts a ban by id.
func (s *ChatBanService) Remove(ctx context.Context, id string) error {
	bans, err := s.load()
	if err != nil {
		return err
	}

	for i, ban := range bans {
		if ban.ID != id {
			continue
		}
		bans = append(bans[:i], bans[i+1:]...)
		if err := s.save(bans); err != nil {
			return err
		}
		s.eventBus.Publish(ctx, &event.ChatBanRemoved{
			BanID:     id,
			Timestamp: time.Now().UTC(),
		})
		return nil
	}

	return errors.NewNotFoundError("chat ban")
}

// IsBanned reports whether a pair is banned in either direction.
func (s *ChatBanService) IsBanned(ctx context.Context, clientID, contractorID string) (bool, error) {
	bans, err := s.load()
	if err != nil {
		return false, err
	}
	for _, ban := range bans {
		if samePair(ban, clientID, contractorID) {
			return true, nil
		}
	}
	return false, nil
}

func samePair(ban entity.ChatBan, a, b string) bool {
	return (ban.ClientID == a && ban.ContractorID == b) ||
		(ban.ClientID == b && ban.ContractorID == a)
}

func (s *ChatBanService) load() ([]entity.ChatBan, error) {
	raw, ok, err := s.store.Get(kv.KeyChatBans)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to read chat bans: %v", err))
	}
	if !ok {
		return []entity.ChatBan{}, nil
	}

	var bans []entity.ChatBan
	if err := json.Unmarshal(raw, &bans); err != nil {
		return []entity.ChatBan{}, nil
	}
	return bans, nil
}

func (s *ChatBanService) save(bans []entity.ChatBan) error {
	raw, err := json.Marshal(bans)
	if err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to encode chat bans: %v", err))
	}
	if err := s.store.Set(kv.KeyChatBans, raw); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to write chat bans: %v", err))
	}
	return nil
}
