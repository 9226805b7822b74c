package leaderboard

import (
	"testing"

	"yolearn/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestRank(t *testing.T) {
	rohan := user.User{ID: uuid.New(), Name: "Rohan", Points: 2450}
	aditya := user.User{ID: uuid.New(), Name: "Aditya", Points: 2100}
	vikram := user.User{ID: uuid.New(), Name: "Vikram", Points: 1980}
	priya := user.User{ID: uuid.New(), Name: "Priya", Points: 1750}

	// Seven sessions lift Priya level with Aditya; three put Vikram ahead of both.
	completed := map[uuid.UUID]int{priya.ID: 7, vikram.ID: 3}

	got := Rank([]user.User{priya, vikram, aditya, rohan}, completed, 0)
	type row struct {
		Name   string
		Points int
		Rank   int
	}
	var rows []row
	for _, e := range got {
		rows = append(rows, row{e.User.Name, e.Points, e.Rank})
	}
	want := []row{
		{"Rohan", 2450, 1},
		{"Vikram", 2130, 2},
		{"Aditya", 2100, 3},
		{"Priya", 2100, 3},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}

	if top := Rank([]user.User{priya, vikram, aditya, rohan}, completed, 2); len(top) != 2 || top[1].User.ID != vikram.ID {
		t.Fatalf("limit not applied: %+v", top)
	}
	if empty := Rank(nil, nil, 5); len(empty) != 0 {
		t.Fatalf("expected empty board, got %d", len(empty))
	}
}
