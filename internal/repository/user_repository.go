package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"yolearn/internal/database"
	"yolearn/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, department, year, bio, profile_photo, education, badges_count, points, date_joined, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u   user.User
		edu []byte
	)
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Department, &u.Year,
		&u.Bio, &u.ProfilePhoto, &edu, &u.BadgesCount, &u.Points, &u.DateJoined, &u.UpdatedAt,
	); err != nil {
		return user.User{}, err
	}
	if len(edu) > 0 {
		if err := json.Unmarshal(edu, &u.Education); err != nil {
			return user.User{}, fmt.Errorf("decode education: %w", err)
		}
	}
	return u, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	edu, err := json.Marshal(u.Education)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.Department, u.Year,
		u.Bio, u.ProfilePhoto, edu, u.BadgesCount, u.Points, u.DateJoined, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if database.IsNoRows(err) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	))
	if database.IsNoRows(err) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = $1)`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&exists)
	return exists, err
}

// UpdateUser never touches email or date_joined.
func (r *PostgresUserRepository) UpdateUser(ctx context.Context, u user.User) error {
	edu, err := json.Marshal(u.Education)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $2, password_hash = $3, department = $4, year = $5, bio = $6,
		     profile_photo = $7, education = $8, updated_at = $9
		 WHERE id = $1`,
		u.ID, u.Name, u.PasswordHash, u.Department, u.Year, u.Bio, u.ProfilePhoto, edu, u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]user.User, error) {
	out := make(map[uuid.UUID]user.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	params := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		params[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE id IN (`+strings.Join(params, ", ")+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers returns every user in join order.
func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY date_joined, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
