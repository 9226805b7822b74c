package skill

import (
	"strings"

	"github.com/google/uuid"
)

const (
	AllCategories = "All"
	AllTypes      = "all"
)

// Criteria is the dashboard search. Empty Category/Type behave like their wildcards.
type Criteria struct {
	Query     string
	Category  string
	SkillType string
}

func (c Criteria) Normalize() Criteria {
	c.Query = strings.TrimSpace(c.Query)
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		c.Category = AllCategories
	}
	c.SkillType = strings.TrimSpace(c.SkillType)
	if c.SkillType == "" {
		c.SkillType = AllTypes
	}
	return c
}

// Matches reports whether s passes all three predicates. ownerName is the display
// name of s.OwnerID and takes part in the text search.
func (c Criteria) Matches(s Skill, ownerName string) bool {
	c = c.Normalize()

	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(s.SkillName), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) &&
			!strings.Contains(strings.ToLower(ownerName), q) {
			return false
		}
	}
	if c.Category != AllCategories && s.Category != c.Category {
		return false
	}
	if c.SkillType != AllTypes && string(s.SkillType) != c.SkillType {
		return false
	}
	return true
}

// Filter keeps catalog order.
func Filter(catalog []Skill, owners map[uuid.UUID]string, c Criteria) []Skill {
	out := make([]Skill, 0, len(catalog))
	for _, s := range catalog {
		if c.Matches(s, owners[s.OwnerID]) {
			out = append(out, s)
		}
	}
	return out
}
