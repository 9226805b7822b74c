package dto

import (
	"time"

	"yolearn/internal/domain/forum"

	"github.com/google/uuid"
)

type AnswerResponse struct {
	ID         uuid.UUID  `json:"id"`
	AuthorID   *uuid.UUID `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Content    string     `json:"content"`
	DatePosted time.Time  `json:"date_posted"`
}

type QuestionResponse struct {
	ID          uuid.UUID        `json:"id"`
	AuthorID    *uuid.UUID       `json:"author_id"`
	AuthorName  string           `json:"author_name"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Tags        []string         `json:"tags"`
	DatePosted  time.Time        `json:"date_posted"`
	AnswerCount int              `json:"answer_count"`
	Answers     []AnswerResponse `json:"answers"`
}

func NewQuestionResponse(q forum.Question) QuestionResponse {
	answers := make([]AnswerResponse, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, AnswerResponse{
			ID:         a.ID,
			AuthorID:   authorRef(a.AuthorID),
			AuthorName: a.AuthorName,
			Content:    a.Content,
			DatePosted: a.DatePosted,
		})
	}
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return QuestionResponse{
		ID:          q.ID,
		AuthorID:    authorRef(q.AuthorID),
		AuthorName:  q.AuthorName,
		Title:       q.Title,
		Content:     q.Content,
		Tags:        tags,
		DatePosted:  q.DatePosted,
		AnswerCount: len(q.Answers),
		Answers:     answers,
	}
}

func NewQuestionListResponse(qs []forum.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// authorRef is nil for tombstoned authors.
func authorRef(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
