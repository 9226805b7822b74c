package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"
	"yolearn/internal/repository/memory"

	"github.com/google/uuid"
)

type countingCatalog struct{ n int }

func (c *countingCatalog) InvalidateCatalog(context.Context) { c.n++ }

type fixture struct {
	svc     *Service
	deps    Deps
	catalog *countingCatalog
	alice   user.User
	bob     user.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cat := &countingCatalog{}
	d := Deps{
		Users:         memory.NewUserRepository(),
		Skills:        memory.NewSkillRepository(),
		Matches:       memory.NewMatchRepository(),
		Forum:         memory.NewForumRepository(),
		Notifications: memory.NewNotificationRepository(),
		Preferences:   memory.NewPreferenceStore(),
		Catalog:       cat,
	}
	ctx := context.Background()
	alice := user.User{ID: uuid.New(), Name: "Alice", Email: "alice@university.edu", PasswordHash: "h", Department: "Music", Year: 2}
	bob := user.User{ID: uuid.New(), Name: "Bob", Email: "bob@university.edu", PasswordHash: "h", Department: "Business", Year: 3}
	for _, u := range []user.User{alice, bob} {
		if err := d.Users.CreateUser(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return fixture{svc: NewService(d), deps: d, catalog: cat, alice: alice, bob: bob}
}

func TestService_UpdateProfile_MergesAndKeepsEmail(t *testing.T) {
	f := newFixture(t)
	bio := "Guitarist"
	year := 4

	got, err := f.svc.UpdateProfile(context.Background(), f.alice.ID, user.Patch{Bio: &bio, Year: &year})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Bio != bio || got.Year != 4 || got.Name != "Alice" || got.Email != f.alice.Email {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if f.catalog.n != 0 {
		t.Fatalf("catalog invalidated without a name change")
	}

	name := "Alice R."
	if _, err := f.svc.UpdateProfile(context.Background(), f.alice.ID, user.Patch{Name: &name}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if f.catalog.n != 1 {
		t.Fatalf("expected catalog invalidation on rename")
	}
}

func TestService_UpdateProfile_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bad := 9
	empty := " "

	if _, err := f.svc.UpdateProfile(ctx, f.alice.ID, user.Patch{Year: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for year, got %v", err)
	}
	if _, err := f.svc.UpdateProfile(ctx, f.alice.ID, user.Patch{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for name, got %v", err)
	}
	bio := "x"
	if _, err := f.svc.UpdateProfile(ctx, uuid.New(), user.Patch{Bio: &bio}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CompleteOnboarding(t *testing.T) {
	f := newFixture(t)
	edu := user.Education{Degree: user.Degree{Institution: "IIT Bombay", DegreeName: "B.Tech"}}

	got, err := f.svc.CompleteOnboarding(context.Background(), f.bob.ID, OnboardingInput{
		Department: "Computer Science",
		Year:       2,
		Bio:        "  Hello  ",
		Education:  edu,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Department != "Computer Science" || got.Year != 2 || got.Bio != "Hello" || got.Education != edu {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestService_ChangePhoto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ChangePhoto(ctx, f.alice.ID, "application/pdf", []byte("%PDF"))
	if !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	cur, _ := f.svc.GetUser(ctx, f.alice.ID)
	if cur.ProfilePhoto != f.alice.ProfilePhoto {
		t.Fatalf("photo changed on rejected upload")
	}

	got, err := f.svc.ChangePhoto(ctx, f.alice.ID, "image/png", []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(got.ProfilePhoto, "data:image/png;base64,") {
		t.Fatalf("unexpected photo url: %q", got.ProfilePhoto)
	}
}

func TestService_GetProfile_Stats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := skill.Skill{ID: uuid.New(), OwnerID: f.alice.ID, SkillName: "Guitar", SkillType: skill.TypeTeach, Level: skill.LevelBeginner}
	_ = f.deps.Skills.CreateSkill(ctx, s)
	_ = f.deps.Matches.CreateMatch(ctx, match.Match{ID: uuid.New(), LearnerID: f.bob.ID, MentorID: f.alice.ID, SkillID: s.ID, Status: match.StatusCompleted})
	_ = f.deps.Matches.CreateMatch(ctx, match.Match{ID: uuid.New(), LearnerID: f.bob.ID, MentorID: f.alice.ID, SkillID: s.ID, Status: match.StatusAccepted})

	p, err := f.svc.GetProfile(ctx, f.alice.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.SkillsCount != 1 || p.CompletedSessions != 1 {
		t.Fatalf("unexpected stats: %+v", p)
	}
	if len(p.Badges) != 0 {
		t.Fatalf("expected no badges, got %d", len(p.Badges))
	}
}

func TestService_GetProfile_Badges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, _ := f.deps.Users.GetUserByID(ctx, f.bob.ID)
	u.BadgesCount = 2
	if err := f.deps.Users.UpdateUser(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := f.svc.GetProfile(ctx, f.bob.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Badges) != 2 || p.Badges[0].Name != "First Step" || p.Badges[1].Name != "Code Wizard" {
		t.Fatalf("unexpected badges: %+v", p.Badges)
	}
}

func TestService_DeleteUser_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := skill.Skill{ID: uuid.New(), OwnerID: f.alice.ID, SkillName: "Guitar"}
	_ = f.deps.Skills.CreateSkill(ctx, s)
	_ = f.deps.Matches.CreateMatch(ctx, match.Match{ID: uuid.New(), LearnerID: f.bob.ID, MentorID: f.alice.ID, SkillID: s.ID, Status: match.StatusPending})
	_ = f.deps.Notifications.CreateNotification(ctx, notification.Notification{ID: uuid.New(), RecipientID: f.alice.ID, Text: "hi", CreatedAt: time.Now()})
	q := forum.Question{ID: uuid.New(), AuthorID: f.alice.ID, AuthorName: "Alice", Title: "t", Content: "c"}
	_ = f.deps.Forum.CreateQuestion(ctx, q)
	_ = f.deps.Preferences.SetDarkMode(ctx, f.alice.ID, true)

	if err := f.svc.DeleteUser(ctx, f.alice.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := f.svc.GetUser(ctx, f.alice.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if ok, _ := f.svc.Exists(ctx, f.alice.ID); ok {
		t.Fatalf("expected Exists=false")
	}
	if left, _ := f.deps.Skills.ListSkills(ctx); len(left) != 0 {
		t.Fatalf("expected skills removed, got %d", len(left))
	}
	if left, _ := f.deps.Matches.ListMatchesForUser(ctx, f.bob.ID); len(left) != 0 {
		t.Fatalf("expected matches removed, got %d", len(left))
	}
	if left, _ := f.deps.Notifications.ListNotifications(ctx, f.alice.ID); len(left) != 0 {
		t.Fatalf("expected notifications removed")
	}
	if _, found, _ := f.deps.Preferences.GetDarkMode(ctx, f.alice.ID); found {
		t.Fatalf("expected preference removed")
	}
	got, _ := f.deps.Forum.GetQuestionByID(ctx, q.ID)
	if got.AuthorID != uuid.Nil || got.AuthorName != forum.DeletedAuthorName {
		t.Fatalf("expected tombstoned author, got %+v", got)
	}
	if f.catalog.n != 1 {
		t.Fatalf("expected catalog invalidation")
	}
	if err := f.svc.DeleteUser(ctx, f.alice.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

type failingNotifications struct {
	notification.Repository
}

func (failingNotifications) DeleteNotificationsFor(context.Context, uuid.UUID) (int, error) {
	return 0, errors.New("connection reset")
}

func TestService_DeleteUser_CleanupFailureStillRemovesAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.deps.Notifications = failingNotifications{Repository: f.deps.Notifications}
	svc := NewService(f.deps)

	s := skill.Skill{ID: uuid.New(), OwnerID: f.alice.ID, SkillName: "Guitar"}
	_ = f.deps.Skills.CreateSkill(ctx, s)
	q := forum.Question{ID: uuid.New(), AuthorID: f.alice.ID, AuthorName: "Alice", Title: "t", Content: "c"}
	_ = f.deps.Forum.CreateQuestion(ctx, q)

	if err := svc.DeleteUser(ctx, f.alice.ID); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if ok, _ := svc.Exists(ctx, f.alice.ID); ok {
		t.Fatalf("account must be gone even when cleanup fails")
	}
	if left, _ := f.deps.Skills.ListSkills(ctx); len(left) != 0 {
		t.Fatalf("expected skills removed, got %d", len(left))
	}
	got, _ := f.deps.Forum.GetQuestionByID(ctx, q.ID)
	if got.AuthorName != forum.DeletedAuthorName {
		t.Fatalf("steps after the failure must still run, got %+v", got)
	}
	if f.catalog.n != 1 {
		t.Fatalf("expected catalog invalidation")
	}
}
