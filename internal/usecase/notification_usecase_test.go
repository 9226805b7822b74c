package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_FeedIsPerRecipient(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	first, err := w.notify.Notify(ctx, alice, "one")
	require.NoError(t, err)
	_, err = w.notify.Notify(ctx, bob, "two")
	require.NoError(t, err)
	_, err = w.notify.Notify(ctx, alice, "three")
	require.NoError(t, err)

	feed, err := w.notify.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "three", feed.Items[0].Text)
	assert.Equal(t, 2, feed.Unread)

	assert.ErrorIs(t, w.notify.MarkRead(ctx, bob, first.ID), ErrNotFound)
	require.NoError(t, w.notify.MarkRead(ctx, alice, first.ID))

	n, err := w.notify.UnreadCount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	marked, err := w.notify.MarkAllRead(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	n, err = w.notify.UnreadCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNotifications_PushFailureStillStores(t *testing.T) {
	w := newWorld(t)
	w.publisher.err = errors.New("redis down")
	ctx := context.Background()
	recipient := uuid.New()

	_, err := w.notify.Notify(ctx, recipient, "hello")
	require.NoError(t, err)

	feed, err := w.notify.List(ctx, recipient)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 1)
	assert.Empty(t, w.publisher.sent)
}
