package usecase

import (
	"context"
	"errors"
	"time"

	"yolearn/internal/domain/notification"
	"yolearn/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher pushes a stored notification to the recipient's live connections.
type Publisher interface {
	Publish(ctx context.Context, n notification.Notification) error
}

type Feed struct {
	Items  []notification.Notification
	Unread int
}

type NotificationUsecase interface {
	Notify(ctx context.Context, recipientID uuid.UUID, text string) (notification.Notification, error)
	List(ctx context.Context, recipientID uuid.UUID) (Feed, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type Notifications struct {
	repo      notification.Repository
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewNotificationUsecase(repo notification.Repository, publisher Publisher, logger *zap.Logger) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// Notify appends to the recipient's feed. A failed push is logged and does
// not fail the call; the feed is the source of truth.
func (u *Notifications) Notify(ctx context.Context, recipientID uuid.UUID, text string) (notification.Notification, error) {
	n := notification.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Text:        text,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.repo.CreateNotification(ctx, n); err != nil {
		return notification.Notification{}, ErrInternal
	}

	delivery := "stored"
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, n); err != nil {
			u.logger.Warn("[Notification] push failed",
				zap.String("recipient_id", recipientID.String()),
				zap.Error(err),
			)
		} else {
			delivery = "pushed"
		}
	}
	observability.NotificationsSent.WithLabelValues(delivery).Inc()
	return n, nil
}

func (u *Notifications) List(ctx context.Context, recipientID uuid.UUID) (Feed, error) {
	items, err := u.repo.ListNotifications(ctx, recipientID)
	if err != nil {
		return Feed{}, ErrInternal
	}
	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return Feed{Items: items, Unread: unread}, nil
}

func (u *Notifications) MarkRead(ctx context.Context, recipientID, id uuid.UUID) error {
	if err := u.repo.MarkRead(ctx, recipientID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := u.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *Notifications) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := u.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
