package memory

import (
	"context"
	"sync"

	"yolearn/internal/domain/notification"

	"github.com/google/uuid"
)

// NotificationRepository keeps one feed per recipient, newest first.
type NotificationRepository struct {
	mu    sync.RWMutex
	feeds map[uuid.UUID][]notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{feeds: make(map[uuid.UUID][]notification.Notification)}
}

func (r *NotificationRepository) CreateNotification(_ context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feeds[n.RecipientID] = append([]notification.Notification{n}, r.feeds[n.RecipientID]...)
	return nil
}

func (r *NotificationRepository) ListNotifications(_ context.Context, recipientID uuid.UUID) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := r.feeds[recipientID]
	out := make([]notification.Notification, len(feed))
	copy(out, feed)
	return out, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, recipientID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	feed := r.feeds[recipientID]
	for i := range feed {
		if feed[i].ID == id {
			feed[i].Read = true
			return nil
		}
	}
	return notification.ErrNotFound
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, recipientID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	feed := r.feeds[recipientID]
	for i := range feed {
		if !feed[i].Read {
			feed[i].Read = true
			n++
		}
	}
	return n, nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, recipientID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, it := range r.feeds[recipientID] {
		if !it.Read {
			n++
		}
	}
	return n, nil
}

func (r *NotificationRepository) DeleteNotificationsFor(_ context.Context, recipientID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.feeds[recipientID])
	delete(r.feeds, recipientID)
	return n, nil
}
