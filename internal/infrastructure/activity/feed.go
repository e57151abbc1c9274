// Package activity keeps an in-memory feed of admin actions, fed by domain
// events published on the bus. The feed is session-scoped and resets on
// restart, matching the rest of the mock data layer.
package activity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"binaa-admin/internal/domain/event"
	"binaa-admin/internal/infrastructure/bus"
)

// Entry is one recorded admin action.
type Entry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	SubjectID  string    `json:"subject_id"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Feed accumulates entries newest-first, capped at a fixed size.
type Feed struct {
	entries []Entry
	cap     int
	mu      sync.RWMutex
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 100
	}
	return &Feed{cap: capacity}
}

// Register subscribes the feed to every admin action event.
func (f *Feed) Register(eventBus bus.EventBus) {
	for _, eventType := range []string{
		"PromoCodeCreated",
		"PromoCodeToggled",
		"ChatBanAdded",
		"ChatBanRemoved",
		"ChatSettingsUpdated",
		"ComplaintResponded",
	} {
		eventBus.Subscribe(eventType, bus.EventHandlerFunc(f.handle))
	}
}

func (f *Feed) handle(ctx context.Context, evt event.DomainEvent) error {
	detail := ""
	switch e := evt.(type) {
	case *event.PromoCodeCreated:
		detail = fmt.Sprintf("promo code %s at %.0f%%", e.Code, e.DiscountRate)
	case *event.PromoCodeToggled:
		state := "deactivated"
		if e.IsActive {
			state = "activated"
		}
		detail = fmt.Sprintf("promo code %s %s", e.Code, state)
	case *event.ChatBanAdded:
		detail = fmt.Sprintf("chat banned between %s and %s", e.ClientID, e.ContractorID)
	case *event.ChatSettingsUpdated:
		if e.DisableChatCompletely {
			detail = "chat disabled platform-wide"
		} else {
			detail = "chat settings updated"
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]Entry{{
		ID:         fmt.Sprintf("act-%d", len(f.entries)+1),
		Action:     evt.EventType(),
		SubjectID:  evt.AggregateID(),
		Detail:     detail,
		OccurredAt: evt.OccurredAt(),
	}}, f.entries...)

	if len(f.entries) > f.cap {
		f.entries = f.entries[:f.cap]
	}
	return nil
}

// Entries returns a snapshot of the feed, newest first.
func (f *Feed) Entries() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}
