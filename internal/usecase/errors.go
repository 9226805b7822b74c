package usecase

import (
	"errors"

	"yolearn/internal/domain/match"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrNotFound     = errors.New("not found")
	ErrNotOwner     = errors.New("not allowed for this resource")
	ErrSelfRequest  = errors.New("cannot request a session on your own skill")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrInvalidTransition is the domain error, re-exported for handlers.
	ErrInvalidTransition = match.ErrInvalidTransition
)
