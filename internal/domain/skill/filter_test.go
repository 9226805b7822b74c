package skill

import (
	"testing"

	"github.com/google/uuid"
)

func TestFilter(t *testing.T) {
	rohan, priya := uuid.New(), uuid.New()
	owners := map[uuid.UUID]string{rohan: "Rohan Mehta", priya: "Priya Sharma"}

	guitar := Skill{ID: uuid.New(), OwnerID: rohan, SkillName: "Acoustic Guitar Basics", SkillType: TypeTeach, Category: "Music", Description: "chords and strumming"}
	ukulele := Skill{ID: uuid.New(), OwnerID: priya, SkillName: "Learn to play the Ukulele", SkillType: TypeLearn, Category: "Music", Description: "where to start"}
	procreate := Skill{ID: uuid.New(), OwnerID: priya, SkillName: "Introduction to Procreate", SkillType: TypeTeach, Category: "Art & Design", Description: "brushes and layers"}
	lowerMusic := Skill{ID: uuid.New(), OwnerID: rohan, SkillName: "Theory", SkillType: TypeTeach, Category: "music"}

	catalog := []Skill{guitar, ukulele, procreate, lowerMusic}

	cases := []struct {
		name string
		c    Criteria
		want []uuid.UUID
	}{
		{"empty criteria keeps everything", Criteria{}, []uuid.UUID{guitar.ID, ukulele.ID, procreate.ID, lowerMusic.ID}},
		{"wildcards", Criteria{Category: "All", SkillType: "all"}, []uuid.UUID{guitar.ID, ukulele.ID, procreate.ID, lowerMusic.ID}},
		{"category is exact and case sensitive", Criteria{Category: "Music"}, []uuid.UUID{guitar.ID, ukulele.ID}},
		{"query matches name case-insensitively", Criteria{Query: "GUITAR"}, []uuid.UUID{guitar.ID}},
		{"query matches description", Criteria{Query: "layers"}, []uuid.UUID{procreate.ID}},
		{"query matches owner name", Criteria{Query: "priya"}, []uuid.UUID{ukulele.ID, procreate.ID}},
		{"type filter", Criteria{SkillType: "learn"}, []uuid.UUID{ukulele.ID}},
		{"predicates are ANDed", Criteria{Query: "priya", Category: "Music", SkillType: "teach"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(catalog, owners, tc.c)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d skills, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i].ID != tc.want[i] {
					t.Fatalf("position %d: expected %s, got %s", i, tc.want[i], got[i].ID)
				}
			}
		})
	}
}

func TestFilter_CategoryIgnoresSearchText(t *testing.T) {
	owner := uuid.New()
	catalog := []Skill{
		{ID: uuid.New(), OwnerID: owner, SkillName: "Guitar", Category: "Music"},
		{ID: uuid.New(), OwnerID: owner, SkillName: "Guitar photography", Category: "Art & Design"},
	}
	got := Filter(catalog, nil, Criteria{Query: "guitar", Category: "Music"})
	for _, s := range got {
		if s.Category != "Music" {
			t.Fatalf("unexpected category %q", s.Category)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(got))
	}
}
