package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/domain/event"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewInMemoryEventBus()

	var calls int
	handler := EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		calls++
		return nil
	})

	require.NoError(t, b.Subscribe("PromoCodeCreated", handler))
	require.NoError(t, b.Subscribe("PromoCodeCreated", handler))

	err := b.Publish(context.Background(), &event.PromoCodeCreated{
		PromoID: "p-1", Code: "KSA99", Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	b := NewInMemoryEventBus()

	err := b.Publish(context.Background(), &event.ChatBanRemoved{BanID: "b-1", Timestamp: time.Now()})
	assert.NoError(t, err)
}

func TestPublishCollectsHandlerErrors(t *testing.T) {
	b := NewInMemoryEventBus()

	require.NoError(t, b.Subscribe("ChatSettingsUpdated", EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return assert.AnError
		})))

	err := b.Publish(context.Background(), &event.ChatSettingsUpdated{Timestamp: time.Now()})
	assert.Error(t, err)
}
