// Package badge holds the fixed achievement catalog. A user with a badge
// count of n holds the first n catalog entries.
package badge

import "time"

type Badge struct {
	ID          string
	Name        string
	Icon        string
	DateAwarded time.Time
}

var catalog = []Badge{
	{ID: "badge-1", Name: "First Step", Icon: "star", DateAwarded: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC)},
	{ID: "badge-2", Name: "Code Wizard", Icon: "code", DateAwarded: time.Date(2023, 11, 20, 14, 30, 0, 0, time.UTC)},
	{ID: "badge-3", Name: "Mentor", Icon: "mentor", DateAwarded: time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)},
	{ID: "badge-4", Name: "Polyglot", Icon: "language", DateAwarded: time.Date(2024, 2, 22, 9, 0, 0, 0, time.UTC)},
	{ID: "badge-5", Name: "Bookworm", Icon: "book", DateAwarded: time.Date(2024, 3, 18, 18, 0, 0, 0, time.UTC)},
	{ID: "badge-6", Name: "Maestro", Icon: "music", DateAwarded: time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)},
	{ID: "badge-7", Name: "Savior", Icon: "first-aid", DateAwarded: time.Date(2024, 5, 1, 16, 45, 0, 0, time.UTC)},
}

func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

func Max() int { return len(catalog) }

// Earned returns the badges held with the given count, clamped to the catalog.
func Earned(count int) []Badge {
	count = max(0, min(count, len(catalog)))
	out := make([]Badge, count)
	copy(out, catalog[:count])
	return out
}
