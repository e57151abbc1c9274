package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/domain/event"
	"binaa-admin/internal/infrastructure/bus"
)

func TestFeedRecordsPublishedEvents(t *testing.T) {
	eventBus := bus.NewInMemoryEventBus()
	feed := NewFeed(10)
	feed.Register(eventBus)

	ctx := context.Background()
	require.NoError(t, eventBus.Publish(ctx, &event.PromoCodeCreated{
		PromoID: "p-1", Code: "KSA99", DiscountRate: 15, Timestamp: time.Now(),
	}))
	require.NoError(t, eventBus.Publish(ctx, &event.ChatBanAdded{
		BanID: "b-1", ClientID: "cl-001", ContractorID: "co-001", Timestamp: time.Now(),
	}))

	entries := feed.Entries()
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "ChatBanAdded", entries[0].Action)
	assert.Equal(t, "PromoCodeCreated", entries[1].Action)
	assert.Contains(t, entries[1].Detail, "KSA99")
}

func TestFeedCapsEntries(t *testing.T) {
	eventBus := bus.NewInMemoryEventBus()
	feed := NewFeed(3)
	feed.Register(eventBus)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, eventBus.Publish(ctx, &event.PromoCodeToggled{
			PromoID: fmt.Sprintf("p-%d", i), Code: "X", IsActive: true, Timestamp: time.Now(),
		}))
	}

	entries := feed.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "p-4", entries[0].SubjectID)
}

func TestFeedSnapshotIsIsolated(t *testing.T) {
	eventBus := bus.NewInMemoryEventBus()
	feed := NewFeed(10)
	feed.Register(eventBus)

	require.NoError(t, eventBus.Publish(context.Background(), &event.ChatBanRemoved{
		BanID: "b-1", Timestamp: time.Now(),
	}))

	entries := feed.Entries()
	entries[0].Detail = "mutated"

	assert.NotEqual(t, "mutated", feed.Entries()[0].Detail)
}
