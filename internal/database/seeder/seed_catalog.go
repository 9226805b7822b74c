package seeder

import (
	"context"
	"fmt"
	"time"

	"yolearn/internal/domain/forum"
	"yolearn/internal/domain/match"
	"yolearn/internal/domain/notification"
	"yolearn/internal/domain/skill"
)

// The repositories prepend on create, so records are written last to first
// to keep the data set's display order.

type SkillsSeeder struct {
	Data Dataset
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, store Store) error {
	for i := len(s.Data.Skills) - 1; i >= 0; i-- {
		rec := s.Data.Skills[i]
		sk := skill.Skill{
			ID:          ID(rec.Key),
			OwnerID:     ID(rec.Owner),
			SkillName:   rec.SkillName,
			SkillType:   skill.Type(rec.SkillType),
			Category:    rec.Category,
			Level:       skill.Level(rec.Level),
			Description: rec.Description,
			DatePosted:  rec.DatePosted,
		}
		if !sk.SkillType.Valid() || !sk.Level.Valid() {
			return fmt.Errorf("skill %s: invalid type or level", rec.Key)
		}
		if err := store.Skills.CreateSkill(ctx, sk); err != nil {
			return err
		}
	}
	return nil
}

type MatchesSeeder struct {
	Data Dataset
}

func (MatchesSeeder) Name() string { return "matches" }

func (s MatchesSeeder) Run(ctx context.Context, store Store) error {
	for i := len(s.Data.Matches) - 1; i >= 0; i-- {
		rec := s.Data.Matches[i]
		m := match.Match{
			ID:             ID(rec.Key),
			LearnerID:      ID(rec.Learner),
			MentorID:       ID(rec.Mentor),
			SkillID:        ID(rec.Skill),
			Status:         match.Status(rec.Status),
			RequestMessage: rec.RequestMessage,
			ScheduledTime:  rec.ScheduledTime,
			DateRequested:  rec.DateRequested,
			DateUpdated:    rec.DateUpdated,
		}
		if !m.Status.Valid() {
			return fmt.Errorf("match %s: invalid status %q", rec.Key, rec.Status)
		}
		if err := store.Matches.CreateMatch(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

type ForumSeeder struct {
	Data Dataset
}

func (ForumSeeder) Name() string { return "forum" }

func (s ForumSeeder) Run(ctx context.Context, store Store) error {
	names := s.Data.userNames()
	for i := len(s.Data.Questions) - 1; i >= 0; i-- {
		rec := s.Data.Questions[i]
		q := forum.Question{
			ID:         ID(rec.Key),
			AuthorID:   ID(rec.Author),
			AuthorName: names[rec.Author],
			Title:      rec.Title,
			Content:    rec.Content,
			Tags:       append([]string{}, rec.Tags...),
			DatePosted: rec.DatePosted,
		}
		for _, a := range rec.Answers {
			q.Answers = append(q.Answers, forum.Answer{
				ID:         ID(a.Key),
				AuthorID:   ID(a.Author),
				AuthorName: names[a.Author],
				Content:    a.Content,
				DatePosted: a.DatePosted,
			})
		}
		if err := store.Forum.CreateQuestion(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

type NotificationsSeeder struct {
	Data Dataset
	Now  func() time.Time
}

func (NotificationsSeeder) Name() string { return "notifications" }

func (s NotificationsSeeder) Run(ctx context.Context, store Store) error {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	for i := len(s.Data.Notifications) - 1; i >= 0; i-- {
		rec := s.Data.Notifications[i]
		n := notification.Notification{
			ID:          ID(rec.Key),
			RecipientID: ID(rec.Recipient),
			Text:        rec.Text,
			CreatedAt:   now.Add(-rec.Age),
			Read:        rec.Read,
		}
		if err := store.Notifications.CreateNotification(ctx, n); err != nil {
			return err
		}
	}
	return nil
}
