package dto

import (
	"time"

	"yolearn/internal/usecase"

	"github.com/google/uuid"
)

type ParticipantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfilePhoto string    `json:"profile_photo"`
}

type MatchResponse struct {
	ID             uuid.UUID           `json:"id"`
	SkillID        uuid.UUID           `json:"skill_id"`
	SkillName      string              `json:"skill_name"`
	Status         string              `json:"status"`
	RequestMessage string              `json:"request_message"`
	ScheduledTime  *time.Time          `json:"scheduled_time"`
	DateRequested  time.Time           `json:"date_requested"`
	DateUpdated    time.Time           `json:"date_updated"`
	Learner        ParticipantResponse `json:"learner"`
	Mentor         ParticipantResponse `json:"mentor"`
}

type SessionsResponse struct {
	Scheduled []MatchResponse `json:"scheduled"`
	Incoming  []MatchResponse `json:"incoming"`
	Sent      []MatchResponse `json:"sent"`
}

func NewMatchResponse(it usecase.MatchItem) MatchResponse {
	return MatchResponse{
		ID:             it.ID,
		SkillID:        it.SkillID,
		SkillName:      it.SkillName,
		Status:         string(it.Status),
		RequestMessage: it.RequestMessage,
		ScheduledTime:  it.ScheduledTime,
		DateRequested:  it.DateRequested,
		DateUpdated:    it.DateUpdated,
		Learner:        participant(it.Learner),
		Mentor:         participant(it.Mentor),
	}
}

func NewSessionsResponse(b usecase.SessionBoard) SessionsResponse {
	return SessionsResponse{
		Scheduled: matchList(b.Scheduled),
		Incoming:  matchList(b.Incoming),
		Sent:      matchList(b.Sent),
	}
}

func matchList(items []usecase.MatchItem) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewMatchResponse(it))
	}
	return out
}

func participant(p usecase.Participant) ParticipantResponse {
	return ParticipantResponse{ID: p.ID, Name: p.Name, ProfilePhoto: p.ProfilePhoto}
}
