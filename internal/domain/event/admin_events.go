package event

import "time"

// DomainEvent represents a domain event
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// PromoCodeCreated event
type PromoCodeCreated struct {
	PromoID      string    `json:"promo_id"`
	Code         string    `json:"code"`
	DiscountRate float64   `json:"discount_rate"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *PromoCodeCreated) EventType() string     { return "PromoCodeCreated" }
func (e *PromoCodeCreated) AggregateID() string   { return e.PromoID }
func (e *PromoCodeCreated) OccurredAt() time.Time { return e.Timestamp }

// PromoCodeToggled event
type PromoCodeToggled struct {
	PromoID   string    `json:"promo_id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *PromoCodeToggled) EventType() string     { return "PromoCodeToggled" }
func (e *PromoCodeToggled) AggregateID() string   { return e.PromoID }
func (e *PromoCodeToggled) OccurredAt() time.Time { return e.Timestamp }

// ChatBanAdded event
type ChatBanAdded struct {
	BanID        string    `json:"ban_id"`
	ClientID     string    `json:"client_id"`
	ContractorID string    `json:"contractor_id"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ChatBanAdded) EventType() string     { return "ChatBanAdded" }
func (e *ChatBanAdded) AggregateID() string   { return e.BanID }
func (e *ChatBanAdded) OccurredAt() time.Time { return e.Timestamp }

// ChatBanRemoved event
type ChatBanRemoved struct {
	BanID     string    `json:"ban_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ChatBanRemoved) EventType() string     { return "ChatBanRemoved" }
func (e *ChatBanRemoved) AggregateID() string   { return e.BanID }
func (e *ChatBanRemoved) OccurredAt() time.Time { return e.Timestamp }

// ChatSettingsUpdated event
type ChatSettingsUpdated struct {
	DisableChatCompletely bool      `json:"disable_chat_completely"`
	Timestamp             time.Time `json:"timestamp"`
}

func (e *ChatSettingsUpdated) EventType() string     { return "ChatSettingsUpdated" }
func (e *ChatSettingsUpdated) AggregateID() string   { return "chat-settings" }
func (e *ChatSettingsUpdated) OccurredAt() time.Time { return e.Timestamp }

// ComplaintResponded event
type ComplaintResponded struct {
	ComplaintID string    `json:"complaint_id"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *ComplaintResponded) EventType() string     { return "ComplaintResponded" }
func (e *ComplaintResponded) AggregateID() string   { return e.ComplaintID }
func (e *ComplaintResponded) OccurredAt() time.Time { return e.Timestamp }
