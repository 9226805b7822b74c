package forum

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("question not found")

type Repository interface {
	// CreateQuestion puts q at the head of the forum.
	CreateQuestion(ctx context.Context, q Question) error
	GetQuestionByID(ctx context.Context, id uuid.UUID) (Question, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	// AppendAnswer builds the answer from the current question state and appends it atomically.
	AppendAnswer(ctx context.Context, questionID uuid.UUID, build func(q Question) Answer) (Question, error)
	// AnonymizeAuthor tombstones every question and answer written by authorID.
	AnonymizeAuthor(ctx context.Context, authorID uuid.UUID) error
}
