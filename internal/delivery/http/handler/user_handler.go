package handler

import (
	"io"

	"yolearn/internal/delivery/http/dto"
	"yolearn/internal/delivery/http/middleware"
	"yolearn/internal/domain/user"
	"yolearn/internal/pkg/response"
	"yolearn/internal/usecase"
	useruc "yolearn/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

const headerPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"

type UserHandler struct {
	uc    usecase.UserUsecase
	prefs usecase.PreferenceUsecase
}

type updateProfileRequest struct {
	Name         *string         `json:"name" validate:"omitempty,max=100"`
	Department   *string         `json:"department" validate:"omitempty,max=100"`
	Year         *int            `json:"year" validate:"omitempty,min=1,max=6"`
	Bio          *string         `json:"bio" validate:"omitempty,max=1000"`
	Education    *user.Education `json:"education"`
	ProfilePhoto *string         `json:"profile_photo"`
}

type onboardingRequest struct {
	Department string         `json:"department" validate:"required,max=100"`
	Year       int            `json:"year" validate:"required,min=1,max=6"`
	Bio        string         `json:"bio" validate:"max=1000"`
	Education  user.Education `json:"education"`
}

type preferencesRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

func NewUserHandler(uc usecase.UserUsecase, prefs usecase.PreferenceUsecase) *UserHandler {
	return &UserHandler{uc: uc, prefs: prefs}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Delete("/me", h.DeleteMe)
	r.Post("/me/onboarding", h.Onboarding)
	r.Put("/me/photo", h.ChangePhoto)
	r.Get("/me/preferences", h.GetPreferences)
	r.Put("/me/preferences", h.UpdatePreferences)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(prof))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateProfile(c.Context(), userID, user.Patch{
		Name:         req.Name,
		Department:   req.Department,
		Year:         req.Year,
		Bio:          req.Bio,
		Education:    req.Education,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

func (h *UserHandler) DeleteMe(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *UserHandler) Onboarding(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req onboardingRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.CompleteOnboarding(c.Context(), userID, useruc.OnboardingInput{
		Department: req.Department,
		Year:       req.Year,
		Bio:        req.Bio,
		Education:  req.Education,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

// ChangePhoto accepts a multipart upload in the "photo" field.
func (h *UserHandler) ChangePhoto(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing photo", nil, err)
	}
	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, useruc.MaxPhotoBytes+1))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.ChangePhoto(c.Context(), userID, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

func (h *UserHandler) GetPreferences(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	dark, err := h.prefs.DarkMode(c.Context(), userID, c.Get(headerPrefersColorScheme))
	if err != nil {
		return mapUsecaseError(err)
	}
	c.Set(fiber.HeaderVary, headerPrefersColorScheme)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PreferencesResponse{DarkMode: dark})
}

func (h *UserHandler) UpdatePreferences(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req preferencesRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.prefs.SetDarkMode(c.Context(), userID, *req.DarkMode); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PreferencesResponse{DarkMode: *req.DarkMode})
}
