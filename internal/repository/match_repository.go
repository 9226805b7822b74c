package repository

import (
	"context"
	"database/sql"
	"time"

	"yolearn/internal/database"
	"yolearn/internal/domain/match"

	"github.com/google/uuid"
)

const matchColumns = `id, learner_id, mentor_id, skill_id, status, request_message, scheduled_time, date_requested, date_updated`

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func scanMatch(row database.Row) (match.Match, error) {
	var (
		m         match.Match
		scheduled sql.NullTime
	)
	if err := row.Scan(
		&m.ID, &m.LearnerID, &m.MentorID, &m.SkillID, &m.Status, &m.RequestMessage,
		&scheduled, &m.DateRequested, &m.DateUpdated,
	); err != nil {
		return match.Match{}, err
	}
	if scheduled.Valid {
		t := scheduled.Time
		m.ScheduledTime = &t
	}
	return m, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *PostgresMatchRepository) CreateMatch(ctx context.Context, m match.Match) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (`+matchColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.LearnerID, m.MentorID, m.SkillID, string(m.Status), m.RequestMessage,
		nullTime(m.ScheduledTime), m.DateRequested, m.DateUpdated,
	)
	return err
}

func (r *PostgresMatchRepository) GetMatchByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	m, err := scanMatch(r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if database.IsNoRows(err) {
		return match.Match{}, match.ErrNotFound
	}
	return m, err
}

// UpdateMatch locks the row for the duration of fn.
func (r *PostgresMatchRepository) UpdateMatch(ctx context.Context, id uuid.UUID, fn match.MutateFunc) (match.Match, error) {
	var out match.Match
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		m, err := scanMatch(tx.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1 FOR UPDATE`, id))
		if database.IsNoRows(err) {
			return match.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := fn(&m); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE matches
			 SET status = $2, request_message = $3, scheduled_time = $4, date_updated = $5
			 WHERE id = $1`,
			id, string(m.Status), m.RequestMessage, nullTime(m.ScheduledTime), m.DateUpdated,
		)
		if err != nil {
			return err
		}
		m.ID = id
		out = m
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE learner_id = $1 OR mentor_id = $1
		 ORDER BY seq DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) DeleteMatchesForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM matches WHERE learner_id = $1 OR mentor_id = $1`, userID)
	return int(n), err
}

func (r *PostgresMatchRepository) CountCompleted(ctx context.Context) (map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT participant, count(*)
		 FROM (
		     SELECT learner_id AS participant FROM matches WHERE status = 'completed'
		     UNION ALL
		     SELECT mentor_id FROM matches WHERE status = 'completed'
		 ) AS done
		 GROUP BY participant`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id uuid.UUID
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
