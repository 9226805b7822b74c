package skill

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

type Repository interface {
	// CreateSkill puts s at the head of the catalog.
	CreateSkill(ctx context.Context, s Skill) error
	GetSkillByID(ctx context.Context, id uuid.UUID) (Skill, error)
	UpdateSkill(ctx context.Context, s Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	// ListSkills returns the catalog most-recent-first.
	ListSkills(ctx context.Context) ([]Skill, error)
	ListSkillsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Skill, error)
	DeleteSkillsByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
