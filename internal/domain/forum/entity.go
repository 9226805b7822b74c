package forum

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DeletedAuthorName = "Deleted user"

type Answer struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	DatePosted time.Time
}

type Question struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Title      string
	Content    string
	Tags       []string
	DatePosted time.Time
	Answers    []Answer
}

// LastAnswerAt is the zero time when the question has no answers.
func (q Question) LastAnswerAt() time.Time {
	if len(q.Answers) == 0 {
		return time.Time{}
	}
	return q.Answers[len(q.Answers)-1].DatePosted
}

// ParseTags splits a comma separated input. Order and duplicates are kept.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
