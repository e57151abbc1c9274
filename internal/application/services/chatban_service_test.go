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

func newBanService() *ChatBanService {
	return NewChatBanService(kv.NewMemoryStore(), bus.NewInMemoryEventBus())
}

func TestAddChatBan(t *testing.T) {
	svc := newBanService()
	ctx := context.Background()

	ban, err := svc.Add(ctx, AddChatBanRequest{ClientID: "cl-001", ContractorID: "co-001"})
	require.NoError(t, err)
	assert.NotEmpty(t, ban.ID)
	assert.NotEmpty(t, ban.BannedAt)

	bans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bans, 1)
}

func TestAddChatBanRequiresBothParties(t *testing.T) {
	svc := newBanService()

	_, err := svc.Add(context.Background(), AddChatBanRequest{ClientID: "cl-001"})
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// The pair is unordered: banning (a, b) also covers (b, a).
func TestAddChatBanDuplicatePairConflicts(t *testing.T) {
	svc := newBanService()
	ctx := context.Background()

	_, err := svc.Add(ctx, AddChatBanRequest{ClientID: "cl-001", ContractorID: "co-001"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, AddChatBanRequest{ClientID: "cl-001", ContractorID: "co-001"})
	require.Error(t, err)

	// swapped order still conflicts
	_, err = svc.Add(ctx, AddChatBanRequest{ClientID: "co-001", ContractorID: "cl-001"})
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)

	bans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bans, 1)
}

func TestRemoveChatBan(t *testing.T) {
	svc := newBanService()
	ctx := context.Background()

	ban, err := svc.Add(ctx, AddChatBanRequest{ClientID: "cl-001", ContractorID: "co-001"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, ban.ID))

	bans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bans)

	err = svc.Remove(ctx, ban.ID)
	require.Error(t, err)
	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestIsBannedChecksBothDirections(t *testing.T) {
	svc := newBanService()
	ctx := context.Background()

	_, err := svc.Add(ctx, AddChatBanRequest{ClientID: "cl-001", ContractorID: "co-001"})
	require.NoError(t, err)

	banned, err := svc.IsBanned(ctx, "cl-001", "co-001")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = svc.IsBanned(ctx, "co-001", "cl-001")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = svc.IsBanned(ctx, "cl-002", "co-001")
	require.NoError(t, err)
	assert.False(t, banned)
}
