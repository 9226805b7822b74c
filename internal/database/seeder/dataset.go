package seeder

import (
	_ "embed"
	"fmt"
	"time"

	"yolearn/internal/domain/badge"
	"yolearn/internal/domain/user"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/yolearn.yaml
var defaultData []byte

// Dataset is the demo campus loaded on first start.
type Dataset struct {
	Password      string             `yaml:"password"`
	Users         []UserRecord       `yaml:"users"`
	Skills        []SkillRecord      `yaml:"skills"`
	Matches       []MatchRecord      `yaml:"matches"`
	Questions     []QuestionRecord   `yaml:"questions"`
	Notifications []NotificationItem `yaml:"notifications"`
}

type UserRecord struct {
	Key          string         `yaml:"key"`
	Name         string         `yaml:"name"`
	Email        string         `yaml:"email"`
	Department   string         `yaml:"department"`
	Year         int            `yaml:"year"`
	BadgesCount  int            `yaml:"badges_count"`
	Points       int            `yaml:"points"`
	Bio          string         `yaml:"bio"`
	ProfilePhoto string         `yaml:"profile_photo"`
	DateJoined   time.Time      `yaml:"date_joined"`
	Education    user.Education `yaml:"education"`
}

type SkillRecord struct {
	Key         string    `yaml:"key"`
	Owner       string    `yaml:"owner"`
	SkillName   string    `yaml:"skill_name"`
	SkillType   string    `yaml:"skill_type"`
	Category    string    `yaml:"category"`
	Level       string    `yaml:"level"`
	Description string    `yaml:"description"`
	DatePosted  time.Time `yaml:"date_posted"`
}

type MatchRecord struct {
	Key            string     `yaml:"key"`
	Learner        string     `yaml:"learner"`
	Mentor         string     `yaml:"mentor"`
	Skill          string     `yaml:"skill"`
	Status         string     `yaml:"status"`
	RequestMessage string     `yaml:"request_message"`
	ScheduledTime  *time.Time `yaml:"scheduled_time"`
	DateRequested  time.Time  `yaml:"date_requested"`
	DateUpdated    time.Time  `yaml:"date_updated"`
}

type QuestionRecord struct {
	Key        string         `yaml:"key"`
	Author     string         `yaml:"author"`
	Title      string         `yaml:"title"`
	Content    string         `yaml:"content"`
	Tags       []string       `yaml:"tags"`
	DatePosted time.Time      `yaml:"date_posted"`
	Answers    []AnswerRecord `yaml:"answers"`
}

type AnswerRecord struct {
	Key        string    `yaml:"key"`
	Author     string    `yaml:"author"`
	Content    string    `yaml:"content"`
	DatePosted time.Time `yaml:"date_posted"`
}

type NotificationItem struct {
	Key       string        `yaml:"key"`
	Recipient string        `yaml:"recipient"`
	Text      string        `yaml:"text"`
	Age       time.Duration `yaml:"age"`
	Read      bool          `yaml:"read"`
}

// ID derives the stable id of a seed record, so reseeding and tests agree on ids.
func ID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("yolearn:"+key))
}

// DefaultDataset parses the embedded data set.
func DefaultDataset() (Dataset, error) {
	return ParseDataset(defaultData)
}

func ParseDataset(b []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func (ds Dataset) validate() error {
	users := map[string]struct{}{}
	for _, u := range ds.Users {
		if u.BadgesCount < 0 || u.BadgesCount > badge.Max() {
			return fmt.Errorf("user %s: badges_count %d outside 0..%d", u.Key, u.BadgesCount, badge.Max())
		}
		if u.Points < 0 {
			return fmt.Errorf("user %s: negative points", u.Key)
		}
		users[u.Key] = struct{}{}
	}
	skills := map[string]string{}
	for _, s := range ds.Skills {
		if _, ok := users[s.Owner]; !ok {
			return fmt.Errorf("skill %s: unknown owner %s", s.Key, s.Owner)
		}
		skills[s.Key] = s.Owner
	}
	for _, m := range ds.Matches {
		owner, ok := skills[m.Skill]
		if !ok {
			return fmt.Errorf("match %s: unknown skill %s", m.Key, m.Skill)
		}
		if owner != m.Mentor {
			return fmt.Errorf("match %s: mentor %s does not own skill %s", m.Key, m.Mentor, m.Skill)
		}
		if m.Learner == m.Mentor {
			return fmt.Errorf("match %s: learner is mentor", m.Key)
		}
		if _, ok := users[m.Learner]; !ok {
			return fmt.Errorf("match %s: unknown learner %s", m.Key, m.Learner)
		}
	}
	for _, q := range ds.Questions {
		if _, ok := users[q.Author]; !ok {
			return fmt.Errorf("question %s: unknown author %s", q.Key, q.Author)
		}
		for _, a := range q.Answers {
			if _, ok := users[a.Author]; !ok {
				return fmt.Errorf("answer %s: unknown author %s", a.Key, a.Author)
			}
		}
	}
	for _, n := range ds.Notifications {
		if _, ok := users[n.Recipient]; !ok {
			return fmt.Errorf("notification %s: unknown recipient %s", n.Key, n.Recipient)
		}
	}
	return nil
}

func (ds Dataset) userNames() map[string]string {
	out := make(map[string]string, len(ds.Users))
	for _, u := range ds.Users {
		out[u.Key] = u.Name
	}
	return out
}
