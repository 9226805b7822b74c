package handler

import (
	"strconv"

	"yolearn/internal/delivery/http/dto"
	"yolearn/internal/delivery/http/middleware"
	"yolearn/internal/pkg/response"
	"yolearn/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

func (h *LeaderboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/leaderboard", h.Top)
}

// Top accepts an optional ?limit=.
func (h *LeaderboardHandler) Top(c fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return middleware.NewAppError(fiber.StatusBadRequest, "limit must be a positive integer", nil, err)
		}
		limit = n
	}

	entries, err := h.uc.Top(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLeaderboardResponse(entries))
}
