package handler

import (
	"errors"

	"yolearn/internal/delivery/http/middleware"
	"yolearn/internal/pkg/response"
	"yolearn/internal/pkg/validator"
	"yolearn/internal/usecase"
	ucauth "yolearn/internal/usecase/auth"
	useruc "yolearn/internal/usecase/user"

	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrDuplicateEmail):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrBadPassword):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Incorrect password", nil, err)
	case errors.Is(err, ucauth.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Account not found", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput), errors.Is(err, useruc.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, useruc.ErrInvalidFileType):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Profile photo must be an image", nil, err)
	case errors.Is(err, useruc.ErrNotFound), errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrNotOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrSelfRequest):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Cannot request a session on your own skill", nil, err)
	case errors.Is(err, usecase.ErrMissingField):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required field", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// bindBody decodes and validates the JSON body.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		var ve playground.ValidationErrors
		if errors.As(err, &ve) {
			return middleware.NewAppError(fiber.StatusBadRequest, validator.FormatValidationError(ve), nil, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return nil
}

func currentUser(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func pathID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}
