package usecase

import (
	"context"

	"yolearn/internal/domain/user"
	useruc "yolearn/internal/usecase/user"

	"github.com/google/uuid"
)

// UserUsecase is the account surface served by useruc.Service.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (useruc.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch user.Patch) (user.User, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, in useruc.OnboardingInput) (user.User, error)
	ChangePhoto(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (user.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

var _ UserUsecase = (*useruc.Service)(nil)
