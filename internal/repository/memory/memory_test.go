package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/skill"
	"yolearn/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_EmailUniqueCaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, user.User{ID: uuid.New(), Email: "rohan@university.edu"}))
	err := repo.CreateUser(ctx, user.User{ID: uuid.New(), Email: " ROHAN@university.edu "})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	got, err := repo.GetUserByEmail(ctx, "Rohan@University.edu")
	require.NoError(t, err)
	assert.Equal(t, "rohan@university.edu", got.Email)
}

func TestUserRepository_UpdateKeepsEmailAndDeleteFreesIt(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.CreateUser(ctx, user.User{ID: id, Email: "a@x.edu", Name: "A"}))
	require.NoError(t, repo.UpdateUser(ctx, user.User{ID: id, Email: "other@x.edu", Name: "B"}))

	got, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.edu", got.Email)
	assert.Equal(t, "B", got.Name)

	require.NoError(t, repo.DeleteUser(ctx, id))
	exists, err := repo.ExistsByEmail(ctx, "a@x.edu")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.ErrorIs(t, repo.DeleteUser(ctx, id), user.ErrNotFound)
}

func TestSkillRepository_OrderingAndOwnerCascade(t *testing.T) {
	repo := NewSkillRepository()
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()

	first := skill.Skill{ID: uuid.New(), OwnerID: owner, SkillName: "first"}
	second := skill.Skill{ID: uuid.New(), OwnerID: other, SkillName: "second"}
	third := skill.Skill{ID: uuid.New(), OwnerID: owner, SkillName: "third"}
	require.NoError(t, repo.CreateSkill(ctx, first))
	require.NoError(t, repo.CreateSkill(ctx, second))
	require.NoError(t, repo.CreateSkill(ctx, third))

	all, err := repo.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].SkillName, all[1].SkillName, all[2].SkillName})

	removed, err := repo.DeleteSkillsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err = repo.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestSkillRepository_UpdateKeepsImmutableFields(t *testing.T) {
	repo := NewSkillRepository()
	ctx := context.Background()
	posted := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s := skill.Skill{ID: uuid.New(), OwnerID: uuid.New(), SkillName: "Guitar", DatePosted: posted}
	require.NoError(t, repo.CreateSkill(ctx, s))

	edited := s
	edited.OwnerID = uuid.New()
	edited.DatePosted = time.Now()
	edited.SkillName = "Guitar II"
	require.NoError(t, repo.UpdateSkill(ctx, edited))

	got, err := repo.GetSkillByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.OwnerID, got.OwnerID)
	assert.True(t, got.DatePosted.Equal(posted))
	assert.Equal(t, "Guitar II", got.SkillName)
}

func TestMatchRepository_ConcurrentTransitionsHaveOneWinner(t *testing.T) {
	repo := NewMatchRepository()
	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, repo.CreateMatch(ctx, match.Match{ID: id, LearnerID: uuid.New(), MentorID: uuid.New(), Status: match.StatusPending}))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		next := match.StatusAccepted
		if i%2 == 1 {
			next = match.StatusDeclined
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateMatch(ctx, id, func(m *match.Match) error {
				return m.Transition(next, time.Now())
			})
			if err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestMatchRepository_FailedMutationIsNotStored(t *testing.T) {
	repo := NewMatchRepository()
	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, repo.CreateMatch(ctx, match.Match{ID: id, Status: match.StatusCompleted}))

	_, err := repo.UpdateMatch(ctx, id, func(m *match.Match) error {
		m.RequestMessage = "changed"
		return match.ErrInvalidTransition
	})
	assert.ErrorIs(t, err, match.ErrInvalidTransition)

	got, err := repo.GetMatchByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.RequestMessage)

	_, err = repo.UpdateMatch(ctx, uuid.New(), func(*match.Match) error { return nil })
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestForumRepository_ReturnedQuestionsDoNotAlias(t *testing.T) {
	repo := NewForumRepository()
	ctx := context.Background()
	q := forum.Question{ID: uuid.New(), Title: "t", Tags: []string{"go"}}
	require.NoError(t, repo.CreateQuestion(ctx, q))

	got, err := repo.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)
	got.Tags[0] = "mutated"

	again, err := repo.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", again.Tags[0])
}

func TestForumRepository_AnonymizeAuthor(t *testing.T) {
	repo := NewForumRepository()
	ctx := context.Background()
	author, other := uuid.New(), uuid.New()

	q := forum.Question{ID: uuid.New(), AuthorID: author, AuthorName: "Aditya"}
	require.NoError(t, repo.CreateQuestion(ctx, q))
	_, err := repo.AppendAnswer(ctx, q.ID, func(forum.Question) forum.Answer {
		return forum.Answer{ID: uuid.New(), AuthorID: other, AuthorName: "Anjali"}
	})
	require.NoError(t, err)
	_, err = repo.AppendAnswer(ctx, q.ID, func(forum.Question) forum.Answer {
		return forum.Answer{ID: uuid.New(), AuthorID: author, AuthorName: "Aditya"}
	})
	require.NoError(t, err)

	require.NoError(t, repo.AnonymizeAuthor(ctx, author))

	got, err := repo.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.AuthorID)
	assert.Equal(t, forum.DeletedAuthorName, got.AuthorName)
	assert.Equal(t, "Anjali", got.Answers[0].AuthorName)
	assert.Equal(t, forum.DeletedAuthorName, got.Answers[1].AuthorName)
}

func TestNotificationRepository_PerRecipientFeeds(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	older := notification.Notification{ID: uuid.New(), RecipientID: a, Text: "older"}
	newer := notification.Notification{ID: uuid.New(), RecipientID: a, Text: "newer"}
	forB := notification.Notification{ID: uuid.New(), RecipientID: b, Text: "b"}
	require.NoError(t, repo.CreateNotification(ctx, older))
	require.NoError(t, repo.CreateNotification(ctx, newer))
	require.NoError(t, repo.CreateNotification(ctx, forB))

	feed, err := repo.ListNotifications(ctx, a)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "newer", feed[0].Text)

	assert.ErrorIs(t, repo.MarkRead(ctx, a, forB.ID), notification.ErrNotFound)
	require.NoError(t, repo.MarkRead(ctx, a, older.ID))

	unread, err := repo.CountUnread(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	n, err := repo.MarkAllRead(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	unreadB, err := repo.CountUnread(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 1, unreadB)
}

func TestUserRepository_ListUsersInJoinOrder(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	base := time.Date(2023, 9, 1, 10, 0, 0, 0, time.UTC)

	late := user.User{ID: uuid.New(), Email: "late@x.edu", DateJoined: base.Add(48 * time.Hour)}
	early := user.User{ID: uuid.New(), Email: "early@x.edu", DateJoined: base}
	require.NoError(t, repo.CreateUser(ctx, late))
	require.NoError(t, repo.CreateUser(ctx, early))

	got, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestMatchRepository_CountCompletedPerParticipant(t *testing.T) {
	repo := NewMatchRepository()
	ctx := context.Background()
	mentor, learnerA, learnerB := uuid.New(), uuid.New(), uuid.New()

	for _, m := range []match.Match{
		{ID: uuid.New(), LearnerID: learnerA, MentorID: mentor, Status: match.StatusCompleted},
		{ID: uuid.New(), LearnerID: learnerB, MentorID: mentor, Status: match.StatusCompleted},
		{ID: uuid.New(), LearnerID: learnerB, MentorID: mentor, Status: match.StatusAccepted},
	} {
		require.NoError(t, repo.CreateMatch(ctx, m))
	}

	got, err := repo.CountCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{mentor: 2, learnerA: 1, learnerB: 1}, got)
}
