package user

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"yolearn/internal/domain/badge"
	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/preference"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidFileType = errors.New("profile photo must be an image")
	ErrInternal        = errors.New("internal error")
)

const (
	MinYear       = 1
	MaxYear       = 6
	MaxPhotoBytes = 5 << 20
)

// Profile is a user together with stats computed at read time.
type Profile struct {
	User              user.User
	SkillsCount       int
	CompletedSessions int
	Badges            []badge.Badge
}

type OnboardingInput struct {
	Department string
	Year       int
	Bio        string
	Education  user.Education
}

// CatalogInvalidator is told when a change can alter skill search results.
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context)
}

type Deps struct {
	Users         user.Repository
	Skills        skill.Repository
	Matches       match.Repository
	Forum         forum.Repository
	Notifications notification.Repository
	Preferences   preference.Store
	Catalog       CatalogInvalidator
	Logger        *zap.Logger
}

type Service struct {
	users         user.Repository
	skills        skill.Repository
	matches       match.Repository
	forum         forum.Repository
	notifications notification.Repository
	preferences   preference.Store
	catalog       CatalogInvalidator
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(d Deps) *Service {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:         d.Users,
		skills:        d.Skills,
		matches:       d.Matches,
		forum:         d.Forum,
		notifications: d.Notifications,
		preferences:   d.Preferences,
		catalog:       d.Catalog,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

// Exists backs the auth middleware, which must reject tokens of deleted accounts.
func (s *Service) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, ErrInternal
	}
	return true, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	owned, err := s.skills.ListSkillsByOwner(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}
	matches, err := s.matches.ListMatchesForUser(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}

	return Profile{
		User:              u,
		SkillsCount:       len(owned),
		CompletedSessions: match.CompletedCount(userID, matches),
		Badges:            badge.Earned(u.BadgesCount),
	}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch user.Patch) (user.User, error) {
	if err := validatePatch(patch); err != nil {
		return user.User{}, err
	}

	cur, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	next := patch.Apply(cur)
	next.UpdatedAt = s.now().UTC()
	if err := s.users.UpdateUser(ctx, next); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	// Owner names take part in catalog search.
	if patch.Name != nil && *patch.Name != cur.Name && s.catalog != nil {
		s.catalog.InvalidateCatalog(ctx)
	}
	return sanitizeUser(next), nil
}

func (s *Service) CompleteOnboarding(ctx context.Context, userID uuid.UUID, in OnboardingInput) (user.User, error) {
	dept := strings.TrimSpace(in.Department)
	if dept == "" {
		return user.User{}, ErrInvalidInput
	}
	bio := strings.TrimSpace(in.Bio)
	edu := in.Education
	return s.UpdateProfile(ctx, userID, user.Patch{
		Department: &dept,
		Year:       &in.Year,
		Bio:        &bio,
		Education:  &edu,
	})
}

// ChangePhoto stores the image inline as a data URL.
func (s *Service) ChangePhoto(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (user.User, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if !strings.HasPrefix(mediaType, "image/") {
		return user.User{}, ErrInvalidFileType
	}
	if len(data) == 0 || len(data) > MaxPhotoBytes {
		return user.User{}, ErrInvalidInput
	}

	url := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return s.UpdateProfile(ctx, userID, user.Patch{ProfilePhoto: &url})
}

// DeleteUser removes the account with its skills, matches, notifications
// and preferences. Forum posts stay, attributed to a deleted user.
//
// The account row goes first. Every cleanup step runs even when an earlier
// one fails, and each is safe to repeat.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if s.catalog != nil {
		defer s.catalog.InvalidateCatalog(ctx)
	}

	logger := s.logger.With(zap.String("user_id", userID.String()))
	var failed []string
	step := func(name string, err error) {
		if err != nil {
			failed = append(failed, name)
			logger.Error("[User] cleanup step failed", zap.String("step", name), zap.Error(err))
		}
	}

	skills, err := s.skills.DeleteSkillsByOwner(ctx, userID)
	step("skills", err)
	matches, err := s.matches.DeleteMatchesForUser(ctx, userID)
	step("matches", err)
	notifs, err := s.notifications.DeleteNotificationsFor(ctx, userID)
	step("notifications", err)
	step("forum", s.forum.AnonymizeAuthor(ctx, userID))
	if s.preferences != nil {
		step("preferences", s.preferences.DeleteDarkMode(ctx, userID))
	}

	if len(failed) > 0 {
		return ErrInternal
	}

	logger.Info("[User] account deleted",
		zap.Int("skills", skills),
		zap.Int("matches", matches),
		zap.Int("notifications", notifs),
	)
	return nil
}

func validatePatch(p user.Patch) error {
	if p.IsEmpty() {
		return ErrInvalidInput
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidInput
	}
	if p.Year != nil && (*p.Year < MinYear || *p.Year > MaxYear) {
		return ErrInvalidInput
	}
	if p.Department != nil && strings.TrimSpace(*p.Department) == "" {
		return ErrInvalidInput
	}
	return nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
