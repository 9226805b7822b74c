package repository

import (
	"context"

	"yolearn/internal/database"
	"yolearn/internal/domain/notification"

	"github.com/google/uuid"
)

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) CreateNotification(ctx context.Context, n notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, recipient_id, text, read, created_at) VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.RecipientID, n.Text, n.Read, n.CreatedAt,
	)
	return err
}

func (r *PostgresNotificationRepository) ListNotifications(ctx context.Context, recipientID uuid.UUID) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, recipient_id, text, read, created_at
		 FROM notifications
		 WHERE recipient_id = $1
		 ORDER BY seq DESC`,
		recipientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Text, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, recipientID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND recipient_id = $2`,
		id, recipientID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE recipient_id = $1 AND NOT read`,
		recipientID,
	)
	return int(n), err
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND NOT read`,
		recipientID,
	).Scan(&n)
	return n, err
}

func (r *PostgresNotificationRepository) DeleteNotificationsFor(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE recipient_id = $1`, recipientID)
	return int(n), err
}
