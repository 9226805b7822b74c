package memory

import (
	"context"
	"sync"

	"yolearn/internal/domain/forum"

	"github.com/google/uuid"
)

type ForumRepository struct {
	mu        sync.RWMutex
	questions []forum.Question
}

func NewForumRepository() *ForumRepository {
	return &ForumRepository{}
}

func cloneQuestion(q forum.Question) forum.Question {
	q.Tags = append([]string(nil), q.Tags...)
	q.Answers = append([]forum.Answer(nil), q.Answers...)
	return q
}

func (r *ForumRepository) indexOf(id uuid.UUID) int {
	for i, q := range r.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (r *ForumRepository) CreateQuestion(_ context.Context, q forum.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = append([]forum.Question{cloneQuestion(q)}, r.questions...)
	return nil
}

func (r *ForumRepository) GetQuestionByID(_ context.Context, id uuid.UUID) (forum.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return forum.Question{}, forum.ErrNotFound
	}
	return cloneQuestion(r.questions[i]), nil
}

func (r *ForumRepository) ListQuestions(_ context.Context) ([]forum.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]forum.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, cloneQuestion(q))
	}
	return out, nil
}

func (r *ForumRepository) AppendAnswer(_ context.Context, questionID uuid.UUID, build func(q forum.Question) forum.Answer) (forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(questionID)
	if i < 0 {
		return forum.Question{}, forum.ErrNotFound
	}
	q := cloneQuestion(r.questions[i])
	q.Answers = append(q.Answers, build(q))
	r.questions[i] = q
	return cloneQuestion(q), nil
}

func (r *ForumRepository) AnonymizeAuthor(_ context.Context, authorID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		q := cloneQuestion(r.questions[i])
		if q.AuthorID == authorID {
			q.AuthorID = uuid.Nil
			q.AuthorName = forum.DeletedAuthorName
		}
		for j := range q.Answers {
			if q.Answers[j].AuthorID == authorID {
				q.Answers[j].AuthorID = uuid.Nil
				q.Answers[j].AuthorName = forum.DeletedAuthorName
			}
		}
		r.questions[i] = q
	}
	return nil
}
