package repository

import (
	"context"

	"yolearn/internal/database"
	"yolearn/internal/domain/skill"

	"github.com/google/uuid"
)

const skillColumns = `id, owner_id, skill_name, skill_type, category, level, description, date_posted`

// PostgresSkillRepository orders the catalog by insertion sequence, newest first.
type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.OwnerID, &s.SkillName, &s.SkillType, &s.Category, &s.Level, &s.Description, &s.DatePosted)
	return s, err
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s skill.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (`+skillColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.OwnerID, s.SkillName, string(s.SkillType), s.Category, string(s.Level), s.Description, s.DatePosted,
	)
	return err
}

func (r *PostgresSkillRepository) GetSkillByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if database.IsNoRows(err) {
		return skill.Skill{}, skill.ErrNotFound
	}
	return s, err
}

func (r *PostgresSkillRepository) UpdateSkill(ctx context.Context, s skill.Skill) error {
	n, err := r.db.Exec(ctx,
		`UPDATE skills
		 SET skill_name = $2, skill_type = $3, category = $4, level = $5, description = $6
		 WHERE id = $1`,
		s.ID, s.SkillName, string(s.SkillType), s.Category, string(s.Level), s.Description,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	return r.list(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY seq DESC`)
}

func (r *PostgresSkillRepository) ListSkillsByOwner(ctx context.Context, ownerID uuid.UUID) ([]skill.Skill, error) {
	return r.list(ctx, `SELECT `+skillColumns+` FROM skills WHERE owner_id = $1 ORDER BY seq DESC`, ownerID)
}

func (r *PostgresSkillRepository) DeleteSkillsByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE owner_id = $1`, ownerID)
	return int(n), err
}

func (r *PostgresSkillRepository) list(ctx context.Context, query string, args ...any) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
