package seeder

import (
	"context"
	"fmt"
	"sort"

	"yolearn/internal/database"
)

// requiredColumns lists what the seeders write, per table.
var requiredColumns = map[string][]string{
	"users":           {"id", "name", "email", "password_hash", "department", "year", "bio", "profile_photo", "education", "badges_count", "points", "date_joined"},
	"skills":          {"id", "owner_id", "skill_name", "skill_type", "category", "level", "description", "date_posted"},
	"matches":         {"id", "learner_id", "mentor_id", "skill_id", "status", "request_message", "scheduled_time", "date_requested", "date_updated"},
	"forum_questions": {"id", "author_id", "author_name", "title", "content", "tags", "date_posted"},
	"forum_answers":   {"id", "question_id", "author_id", "author_name", "content", "date_posted"},
	"notifications":   {"id", "recipient_id", "text", "created_at", "read"},
}

// CheckSchema fails when a migrated Postgres database lacks a seeded column,
// which usually means migrations were not applied.
func CheckSchema(ctx context.Context, db database.DB) error {
	tables := make([]string, 0, len(requiredColumns))
	for t := range requiredColumns {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	for _, t := range tables {
		if err := ensureTableColumns(ctx, db, t, requiredColumns[t]...); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
