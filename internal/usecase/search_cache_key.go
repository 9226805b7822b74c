package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"yolearn/internal/domain/skill"
)

const (
	skillSearchPrefix  = "skills:search:"
	skillSearchPattern = skillSearchPrefix + "*"
)

type skillSearchCacheKeyInput struct {
	Query     string `json:"q"`
	Category  string `json:"category"`
	SkillType string `json:"type"`
}

// SkillsSearchCacheKey hashes normalized criteria. The query is compared
// case-insensitively so it is lowered here; category and type are exact.
func SkillsSearchCacheKey(c skill.Criteria) string {
	c = c.Normalize()
	in := skillSearchCacheKeyInput{
		Query:     strings.ToLower(c.Query),
		Category:  c.Category,
		SkillType: c.SkillType,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return skillSearchPrefix + hex.EncodeToString(sum[:])
}
