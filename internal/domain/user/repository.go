package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already taken")
)

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
