package repository

import (
	"context"

	"yolearn/internal/database"
	"yolearn/internal/domain/forum"

	"github.com/google/uuid"
)

const questionColumns = `id, author_id, author_name, title, content, tags, date_posted`
const answerColumns = `id, question_id, author_id, author_name, content, date_posted`

type PostgresForumRepository struct {
	db database.DB
}

func NewPostgresForumRepository(db database.DB) *PostgresForumRepository {
	return &PostgresForumRepository{db: db}
}

// nullAuthor stores tombstoned authors as NULL.
func nullAuthor(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func scanQuestion(row database.Row) (forum.Question, error) {
	var (
		q      forum.Question
		author uuid.NullUUID
	)
	if err := row.Scan(&q.ID, &author, &q.AuthorName, &q.Title, &q.Content, &q.Tags, &q.DatePosted); err != nil {
		return forum.Question{}, err
	}
	q.AuthorID = author.UUID
	if q.Tags == nil {
		q.Tags = []string{}
	}
	return q, nil
}

func insertAnswer(ctx context.Context, tx database.Querier, questionID uuid.UUID, a forum.Answer) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO forum_answers (`+answerColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, questionID, nullAuthor(a.AuthorID), a.AuthorName, a.Content, a.DatePosted,
	)
	return err
}

func (r *PostgresForumRepository) CreateQuestion(ctx context.Context, q forum.Question) error {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO forum_questions (`+questionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			q.ID, nullAuthor(q.AuthorID), q.AuthorName, q.Title, q.Content, tags, q.DatePosted,
		)
		if err != nil {
			return err
		}
		for _, a := range q.Answers {
			if err := insertAnswer(ctx, tx, q.ID, a); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresForumRepository) GetQuestionByID(ctx context.Context, id uuid.UUID) (forum.Question, error) {
	return getQuestion(ctx, r.db, id, false)
}

func getQuestion(ctx context.Context, q database.Querier, id uuid.UUID, lock bool) (forum.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM forum_questions WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	question, err := scanQuestion(q.QueryRow(ctx, query, id))
	if database.IsNoRows(err) {
		return forum.Question{}, forum.ErrNotFound
	}
	if err != nil {
		return forum.Question{}, err
	}

	answers, err := loadAnswers(ctx, q, `WHERE question_id = $1`, id)
	if err != nil {
		return forum.Question{}, err
	}
	question.Answers = answers[id]
	return question, nil
}

// loadAnswers groups answers by question, each group in posting order.
func loadAnswers(ctx context.Context, q database.Querier, where string, args ...any) (map[uuid.UUID][]forum.Answer, error) {
	rows, err := q.Query(ctx,
		`SELECT `+answerColumns+` FROM forum_answers `+where+` ORDER BY seq ASC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID][]forum.Answer{}
	for rows.Next() {
		var (
			a          forum.Answer
			questionID uuid.UUID
			author     uuid.NullUUID
		)
		if err := rows.Scan(&a.ID, &questionID, &author, &a.AuthorName, &a.Content, &a.DatePosted); err != nil {
			return nil, err
		}
		a.AuthorID = author.UUID
		out[questionID] = append(out[questionID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresForumRepository) ListQuestions(ctx context.Context) ([]forum.Question, error) {
	rows, err := r.db.Query(ctx, `SELECT `+questionColumns+` FROM forum_questions ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]forum.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	answers, err := loadAnswers(ctx, r.db, "")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Answers = answers[out[i].ID]
	}
	return out, nil
}

func (r *PostgresForumRepository) AppendAnswer(ctx context.Context, questionID uuid.UUID, build func(q forum.Question) forum.Answer) (forum.Question, error) {
	var out forum.Question
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		q, err := getQuestion(ctx, tx, questionID, true)
		if err != nil {
			return err
		}
		a := build(q)
		if err := insertAnswer(ctx, tx, questionID, a); err != nil {
			return err
		}
		q.Answers = append(q.Answers, a)
		out = q
		return nil
	})
	if err != nil {
		return forum.Question{}, err
	}
	return out, nil
}

func (r *PostgresForumRepository) AnonymizeAuthor(ctx context.Context, authorID uuid.UUID) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE forum_questions SET author_id = NULL, author_name = $2 WHERE author_id = $1`,
			authorID, forum.DeletedAuthorName,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`UPDATE forum_answers SET author_id = NULL, author_name = $2 WHERE author_id = $1`,
			authorID, forum.DeletedAuthorName,
		)
		return err
	})
}
