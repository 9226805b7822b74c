package dto

import (
	"time"

	"yolearn/internal/domain/notification"
	"yolearn/internal/usecase"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Ago       string    `json:"ago"`
	Read      bool      `json:"read"`
}

type NotificationFeedResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

func NewNotificationResponse(n notification.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		Ago:       notification.Ago(n.CreatedAt, now),
		Read:      n.Read,
	}
}

func NewNotificationFeedResponse(f usecase.Feed, now time.Time) NotificationFeedResponse {
	items := make([]NotificationResponse, 0, len(f.Items))
	for _, n := range f.Items {
		items = append(items, NewNotificationResponse(n, now))
	}
	return NotificationFeedResponse{Items: items, Unread: f.Unread}
}
