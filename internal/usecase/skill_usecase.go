package usecase

import (
	"context"
	"errors"
	"time"

	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"
	"yolearn/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SkillOwner struct {
	ID           uuid.UUID
	Name         string
	Department   string
	ProfilePhoto string
}

// SkillItem is a catalog entry joined with its owner's public profile.
type SkillItem struct {
	skill.Skill
	Owner SkillOwner
}

type SkillInput struct {
	SkillName   string
	SkillType   skill.Type
	Category    string
	Level       skill.Level
	Description string
}

type SkillUsecase interface {
	PostSkill(ctx context.Context, ownerID uuid.UUID, in SkillInput) (SkillItem, error)
	UpdateSkill(ctx context.Context, actorID, skillID uuid.UUID, patch skill.Patch) (SkillItem, error)
	DeleteSkill(ctx context.Context, actorID, skillID uuid.UUID) error
	GetSkill(ctx context.Context, skillID uuid.UUID) (SkillItem, error)
	Filter(ctx context.Context, c skill.Criteria) ([]SkillItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]SkillItem, error)
	InvalidateCatalog(ctx context.Context)
}

type Skill struct {
	skills skill.Repository
	users  user.Repository
	cache  SearchCache
	logger *zap.Logger
	now    func() time.Time
}

func NewSkillUsecase(skills skill.Repository, users user.Repository, cache SearchCache, logger *zap.Logger) *Skill {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Skill{skills: skills, users: users, cache: cache, logger: logger, now: time.Now}
}

func (u *Skill) PostSkill(ctx context.Context, ownerID uuid.UUID, in SkillInput) (SkillItem, error) {
	s := skill.Skill{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		SkillName:   plainText(in.SkillName),
		SkillType:   in.SkillType,
		Category:    plainText(in.Category),
		Level:       in.Level,
		Description: plainText(in.Description),
		DatePosted:  u.now().UTC(),
	}
	if err := validateSkill(s); err != nil {
		return SkillItem{}, err
	}

	if _, err := u.users.GetUserByID(ctx, ownerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SkillItem{}, ErrNotFound
		}
		return SkillItem{}, ErrInternal
	}

	if err := u.skills.CreateSkill(ctx, s); err != nil {
		return SkillItem{}, ErrInternal
	}
	u.InvalidateCatalog(ctx)

	return u.withOwner(ctx, s)
}

func (u *Skill) UpdateSkill(ctx context.Context, actorID, skillID uuid.UUID, patch skill.Patch) (SkillItem, error) {
	cur, err := u.ownedSkill(ctx, actorID, skillID)
	if err != nil {
		return SkillItem{}, err
	}

	if patch.SkillName != nil {
		v := plainText(*patch.SkillName)
		patch.SkillName = &v
	}
	if patch.Category != nil {
		v := plainText(*patch.Category)
		patch.Category = &v
	}
	if patch.Description != nil {
		v := plainText(*patch.Description)
		patch.Description = &v
	}

	next := patch.Apply(cur)
	if err := validateSkill(next); err != nil {
		return SkillItem{}, err
	}
	if err := u.skills.UpdateSkill(ctx, next); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return SkillItem{}, ErrNotFound
		}
		return SkillItem{}, ErrInternal
	}
	u.InvalidateCatalog(ctx)

	return u.withOwner(ctx, next)
}

func (u *Skill) DeleteSkill(ctx context.Context, actorID, skillID uuid.UUID) error {
	if _, err := u.ownedSkill(ctx, actorID, skillID); err != nil {
		return err
	}
	if err := u.skills.DeleteSkill(ctx, skillID); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	u.InvalidateCatalog(ctx)
	return nil
}

func (u *Skill) GetSkill(ctx context.Context, skillID uuid.UUID) (SkillItem, error) {
	s, err := u.skills.GetSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return SkillItem{}, ErrNotFound
		}
		return SkillItem{}, ErrInternal
	}
	return u.withOwner(ctx, s)
}

// Filter serves repeated searches from the cache. Cached entries hold the
// matching skills only; owner profiles are joined on every call.
func (u *Skill) Filter(ctx context.Context, c skill.Criteria) ([]SkillItem, error) {
	c = c.Normalize()
	key := SkillsSearchCacheKey(c)

	var matched []skill.Skill
	hit := false
	if u.cache != nil {
		ok, err := u.cache.GetJSON(ctx, key, &matched)
		if err != nil {
			u.logger.Warn("[SkillSearch] cache read failed", zap.Error(err))
		}
		hit = ok && err == nil
	}

	if hit {
		observability.SkillSearchCache.WithLabelValues("hit").Inc()
	} else {
		observability.SkillSearchCache.WithLabelValues("miss").Inc()

		catalog, err := u.skills.ListSkills(ctx)
		if err != nil {
			return nil, ErrInternal
		}
		owners, err := u.owners(ctx, catalog)
		if err != nil {
			return nil, ErrInternal
		}
		names := make(map[uuid.UUID]string, len(owners))
		for id, o := range owners {
			names[id] = o.Name
		}
		matched = skill.Filter(catalog, names, c)

		if u.cache != nil {
			if err := u.cache.SetJSON(ctx, key, matched, 0); err != nil {
				u.logger.Warn("[SkillSearch] cache write failed", zap.Error(err))
			}
		}
	}

	return u.join(ctx, matched)
}

func (u *Skill) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]SkillItem, error) {
	items, err := u.skills.ListSkillsByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return u.join(ctx, items)
}

// InvalidateCatalog drops every cached search result.
func (u *Skill) InvalidateCatalog(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, skillSearchPattern); err != nil {
		u.logger.Warn("[SkillSearch] cache invalidation failed", zap.Error(err))
	}
}

func (u *Skill) ownedSkill(ctx context.Context, actorID, skillID uuid.UUID) (skill.Skill, error) {
	s, err := u.skills.GetSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return skill.Skill{}, ErrNotFound
		}
		return skill.Skill{}, ErrInternal
	}
	if s.OwnerID != actorID {
		return skill.Skill{}, ErrNotOwner
	}
	return s, nil
}

func (u *Skill) owners(ctx context.Context, items []skill.Skill) (map[uuid.UUID]user.User, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s.OwnerID]; ok {
			continue
		}
		seen[s.OwnerID] = struct{}{}
		ids = append(ids, s.OwnerID)
	}
	return u.users.ListUsersByIDs(ctx, ids)
}

func (u *Skill) join(ctx context.Context, items []skill.Skill) ([]SkillItem, error) {
	owners, err := u.owners(ctx, items)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(items))
	for _, s := range items {
		out = append(out, SkillItem{Skill: s, Owner: toSkillOwner(s.OwnerID, owners[s.OwnerID])})
	}
	return out, nil
}

func (u *Skill) withOwner(ctx context.Context, s skill.Skill) (SkillItem, error) {
	items, err := u.join(ctx, []skill.Skill{s})
	if err != nil {
		return SkillItem{}, err
	}
	return items[0], nil
}

func toSkillOwner(id uuid.UUID, usr user.User) SkillOwner {
	return SkillOwner{ID: id, Name: usr.Name, Department: usr.Department, ProfilePhoto: usr.ProfilePhoto}
}

func validateSkill(s skill.Skill) error {
	if s.SkillName == "" || s.Category == "" {
		return ErrInvalidInput
	}
	if !s.SkillType.Valid() || !s.Level.Valid() {
		return ErrInvalidInput
	}
	return nil
}
