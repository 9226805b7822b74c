package usecase

import (
	"context"
	"testing"
	"time"

	"yolearn/internal/pkg/jwt"
	ucauth "yolearn/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T, w *world) (*Auth, *jwt.HMACService) {
	t.Helper()
	tokens := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	svc := ucauth.NewService(w.users, ucauth.WithBcryptCost(bcrypt.MinCost))
	return NewAuthUsecase(svc, w.users, tokens, nil), tokens
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	w := newWorld(t)
	uc, tokens := newAuth(t, w)
	ctx := context.Background()

	usr, pair, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Sarah Chen", Email: "Sarah@University.edu", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "sarah@university.edu", usr.Email)

	claims, err := tokens.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)

	_, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "sarah@university.edu", Password: "wrong-password"})
	assert.ErrorIs(t, err, ucauth.ErrBadPassword)

	_, loginPair, err := uc.Login(ctx, ucauth.LoginInput{Email: "sarah@university.edu", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, loginPair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = uc.Refresh(ctx, loginPair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_Refresh_DeletedAccount(t *testing.T) {
	w := newWorld(t)
	uc, _ := newAuth(t, w)
	ctx := context.Background()

	usr, pair, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Mike Wilson", Email: "mike@university.edu", Password: "password123"})
	require.NoError(t, err)
	require.NoError(t, w.users.DeleteUser(ctx, usr.ID))

	_, err = uc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
