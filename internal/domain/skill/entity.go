package skill

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTeach Type = "teach"
	TypeLearn Type = "learn"
)

func (t Type) Valid() bool {
	return t == TypeTeach || t == TypeLearn
}

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	default:
		return false
	}
}

type Skill struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	SkillName   string
	SkillType   Type
	Category    string
	Level       Level
	Description string
	DatePosted  time.Time
}

// Patch holds owner-editable fields; ID, OwnerID and DatePosted are immutable.
type Patch struct {
	SkillName   *string
	SkillType   *Type
	Category    *string
	Level       *Level
	Description *string
}

func (p Patch) Apply(s Skill) Skill {
	if p.SkillName != nil {
		s.SkillName = *p.SkillName
	}
	if p.SkillType != nil {
		s.SkillType = *p.SkillType
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	return s
}
