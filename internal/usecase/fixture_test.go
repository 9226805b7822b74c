package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"
	"yolearn/internal/repository/memory"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type recordingPublisher struct {
	mu   sync.Mutex
	sent []notification.Notification
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, n notification.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, n)
	return nil
}

type world struct {
	users         *memory.UserRepository
	skills        *memory.SkillRepository
	matches       *memory.MatchRepository
	forum         *memory.ForumRepository
	notifications *memory.NotificationRepository
	publisher     *recordingPublisher
	notify        *Notifications
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		users:         memory.NewUserRepository(),
		skills:        memory.NewSkillRepository(),
		matches:       memory.NewMatchRepository(),
		forum:         memory.NewForumRepository(),
		notifications: memory.NewNotificationRepository(),
		publisher:     &recordingPublisher{},
	}
	w.notify = NewNotificationUsecase(w.notifications, w.publisher, nil)
	return w
}

func (w *world) addUser(t *testing.T, name string) user.User {
	t.Helper()
	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        gofakeit.Email(),
		PasswordHash: "hash",
		Department:   user.DefaultDepartment,
		Year:         user.DefaultYear,
		DateJoined:   time.Now().UTC(),
	}
	if err := w.users.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (w *world) addSkill(t *testing.T, owner user.User, name string) skill.Skill {
	t.Helper()
	s := skill.Skill{
		ID:          uuid.New(),
		OwnerID:     owner.ID,
		SkillName:   name,
		SkillType:   skill.TypeTeach,
		Category:    "Music",
		Level:       skill.LevelIntermediate,
		Description: gofakeit.Sentence(6),
		DatePosted:  time.Now().UTC(),
	}
	if err := w.skills.CreateSkill(context.Background(), s); err != nil {
		t.Fatalf("create skill: %v", err)
	}
	return s
}
