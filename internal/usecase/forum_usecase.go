package usecase

import (
	"context"
	"errors"
	"time"

	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/user"
	"yolearn/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuestionInput struct {
	Title   string
	Content string
	// Tags is the raw comma separated input.
	Tags string
}

type ForumUsecase interface {
	PostQuestion(ctx context.Context, authorID uuid.UUID, in QuestionInput) (forum.Question, error)
	PostAnswer(ctx context.Context, questionID, authorID uuid.UUID, content string) (forum.Question, error)
	ListQuestions(ctx context.Context) ([]forum.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (forum.Question, error)
}

type Forum struct {
	forum  forum.Repository
	users  user.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewForumUsecase(repo forum.Repository, users user.Repository, logger *zap.Logger) *Forum {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forum{forum: repo, users: users, logger: logger, now: time.Now}
}

func (u *Forum) PostQuestion(ctx context.Context, authorID uuid.UUID, in QuestionInput) (forum.Question, error) {
	title := plainText(in.Title)
	content := plainText(in.Content)
	if title == "" || content == "" {
		return forum.Question{}, ErrMissingField
	}

	author, err := u.author(ctx, authorID)
	if err != nil {
		return forum.Question{}, err
	}

	q := forum.Question{
		ID:         uuid.New(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Title:      title,
		Content:    content,
		Tags:       forum.ParseTags(plainText(in.Tags)),
		DatePosted: u.now().UTC(),
		Answers:    []forum.Answer{},
	}
	if err := u.forum.CreateQuestion(ctx, q); err != nil {
		return forum.Question{}, ErrInternal
	}
	observability.ForumPosts.WithLabelValues("question").Inc()
	return q, nil
}

// PostAnswer appends to the thread. Timestamps never go backwards within a thread.
func (u *Forum) PostAnswer(ctx context.Context, questionID, authorID uuid.UUID, content string) (forum.Question, error) {
	content = plainText(content)
	if content == "" {
		return forum.Question{}, ErrMissingField
	}

	author, err := u.author(ctx, authorID)
	if err != nil {
		return forum.Question{}, err
	}

	q, err := u.forum.AppendAnswer(ctx, questionID, func(q forum.Question) forum.Answer {
		posted := u.now().UTC()
		if last := q.LastAnswerAt(); last.After(posted) {
			posted = last
		}
		return forum.Answer{
			ID:         uuid.New(),
			AuthorID:   author.ID,
			AuthorName: author.Name,
			Content:    content,
			DatePosted: posted,
		}
	})
	if err != nil {
		if errors.Is(err, forum.ErrNotFound) {
			return forum.Question{}, ErrNotFound
		}
		return forum.Question{}, ErrInternal
	}
	observability.ForumPosts.WithLabelValues("answer").Inc()
	return q, nil
}

func (u *Forum) ListQuestions(ctx context.Context) ([]forum.Question, error) {
	qs, err := u.forum.ListQuestions(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return qs, nil
}

func (u *Forum) GetQuestion(ctx context.Context, id uuid.UUID) (forum.Question, error) {
	q, err := u.forum.GetQuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, forum.ErrNotFound) {
			return forum.Question{}, ErrNotFound
		}
		return forum.Question{}, ErrInternal
	}
	return q, nil
}

func (u *Forum) author(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}
