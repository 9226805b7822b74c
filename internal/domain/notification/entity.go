package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Text        string
	CreatedAt   time.Time
	Read        bool
}

type Repository interface {
	CreateNotification(ctx context.Context, n Notification) error
	// ListNotifications returns the recipient's feed newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	DeleteNotificationsFor(ctx context.Context, recipientID uuid.UUID) (int, error)
}
