package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binaa-admin/internal/domain/entity"
	"binaa-admin/pkg/errors"
)

func TestSeededDataset(t *testing.T) {
	d := NewDirectory(0)
	ctx := context.Background()

	users, err := d.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 6)

	requests, err := d.ListRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 5)

	milestones, err := d.ListMilestones(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 5)
}

func TestGetReturnsCopy(t *testing.T) {
	d := NewDirectory(0)
	ctx := context.Background()

	first, err := d.GetRequest(ctx, "req-001")
	require.NoError(t, err)
	first.Title = "mutated"

	second, err := d.GetRequest(ctx, "req-001")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Title)
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	d := NewDirectory(0)
	ctx := context.Background()

	_, err := d.GetContractor(ctx, "co-999")
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestCancelledContextAbortsWait(t *testing.T) {
	d := NewDirectory(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := d.ListUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRespondToComplaintMutatesInPlace(t *testing.T) {
	d := NewDirectory(0)
	ctx := context.Background()

	updated, err := d.RespondToComplaint(ctx, "cmp-001", "تمت المعالجة")
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintResponded, updated.Status)
	assert.Equal(t, "تمت المعالجة", updated.Response)
	assert.NotEmpty(t, updated.RespondedAt)

	// the mutation is visible on subsequent reads
	reloaded, err := d.GetComplaint(ctx, "cmp-001")
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintResponded, reloaded.Status)
	assert.Equal(t, "تمت المعالجة", reloaded.Response)
}

func TestRespondToUnknownComplaint(t *testing.T) {
	d := NewDirectory(0)

	_, err := d.RespondToComplaint(context.Background(), "cmp-999", "x")
	require.Error(t, err)

	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetCategoryAttachesSubcategories(t *testing.T) {
	d := NewDirectory(0)

	category, err := d.GetCategory(context.Background(), "cat-002")
	require.NoError(t, err)
	require.Len(t, category.Subcategories, 1)
	assert.Equal(t, "sub-002", category.Subcategories[0].ID)
}

func TestListMessagesFiltersByThread(t *testing.T) {
	d := NewDirectory(0)

	messages, err := d.ListMessages(context.Background(), "cht-001")
	require.NoError(t, err)
	assert.Len(t, messages, 3)
	for _, m := range messages {
		assert.Equal(t, "cht-001", m.ThreadID)
	}
}
