package memory

import (
	"context"
	"sync"

	"yolearn/internal/domain/skill"

	"github.com/google/uuid"
)

// SkillRepository keeps the catalog as a slice, most recent first.
type SkillRepository struct {
	mu     sync.RWMutex
	skills []skill.Skill
}

func NewSkillRepository() *SkillRepository {
	return &SkillRepository{}
}

func (r *SkillRepository) indexOf(id uuid.UUID) int {
	for i, s := range r.skills {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (r *SkillRepository) CreateSkill(_ context.Context, s skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.skills = append([]skill.Skill{s}, r.skills...)
	return nil
}

func (r *SkillRepository) GetSkillByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return skill.Skill{}, skill.ErrNotFound
	}
	return r.skills[i], nil
}

func (r *SkillRepository) UpdateSkill(_ context.Context, s skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(s.ID)
	if i < 0 {
		return skill.ErrNotFound
	}
	cur := r.skills[i]
	s.OwnerID = cur.OwnerID
	s.DatePosted = cur.DatePosted
	r.skills[i] = s
	return nil
}

func (r *SkillRepository) DeleteSkill(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return skill.ErrNotFound
	}
	r.skills = append(r.skills[:i:i], r.skills[i+1:]...)
	return nil
}

func (r *SkillRepository) ListSkills(_ context.Context) ([]skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]skill.Skill, len(r.skills))
	copy(out, r.skills)
	return out, nil
}

func (r *SkillRepository) ListSkillsByOwner(_ context.Context, ownerID uuid.UUID) ([]skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]skill.Skill, 0)
	for _, s := range r.skills {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SkillRepository) DeleteSkillsByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]skill.Skill, 0, len(r.skills))
	removed := 0
	for _, s := range r.skills {
		if s.OwnerID == ownerID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	r.skills = kept
	return removed, nil
}
