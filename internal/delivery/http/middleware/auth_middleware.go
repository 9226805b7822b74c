package middleware

import (
	"context"
	"errors"
	"strings"

	"yolearn/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

// AccountChecker reports whether the token subject still exists.
type AccountChecker interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type AuthMiddleware struct {
	jwt      jwt.Service
	accounts AccountChecker
}

func NewAuthMiddleware(jwtSvc jwt.Service, accounts AccountChecker) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, accounts: accounts}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.Authenticate(c.Context(), token)
		if err != nil {
			return err
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// Authenticate validates an access token and checks the account was not
// deleted. Errors are AppErrors ready to be returned from a handler.
func (m *AuthMiddleware) Authenticate(ctx context.Context, token string) (jwt.Claims, error) {
	claims, err := m.jwt.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	if m.accounts != nil {
		ok, err := m.accounts.Exists(ctx, claims.UserID)
		if err != nil {
			return jwt.Claims{}, NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if !ok {
			return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Account no longer exists", nil, nil)
		}
	}
	return claims, nil
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}

// UserID reads the authenticated user set by Middleware.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
