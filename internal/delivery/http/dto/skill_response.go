package dto

import (
	"time"

	"yolearn/internal/usecase"

	"github.com/google/uuid"
)

type SkillOwnerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Department   string    `json:"department"`
	ProfilePhoto string    `json:"profile_photo"`
}

type SkillResponse struct {
	ID          uuid.UUID          `json:"id"`
	SkillName   string             `json:"skill_name"`
	SkillType   string             `json:"skill_type"`
	Category    string             `json:"category"`
	Level       string             `json:"level"`
	Description string             `json:"description"`
	DatePosted  time.Time          `json:"date_posted"`
	Owner       SkillOwnerResponse `json:"owner"`
}

func NewSkillResponse(it usecase.SkillItem) SkillResponse {
	return SkillResponse{
		ID:          it.ID,
		SkillName:   it.SkillName,
		SkillType:   string(it.SkillType),
		Category:    it.Category,
		Level:       string(it.Level),
		Description: it.Description,
		DatePosted:  it.DatePosted,
		Owner: SkillOwnerResponse{
			ID:           it.Owner.ID,
			Name:         it.Owner.Name,
			Department:   it.Owner.Department,
			ProfilePhoto: it.Owner.ProfilePhoto,
		},
	}
}

func NewSkillListResponse(items []usecase.SkillItem) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillResponse(it))
	}
	return out
}
