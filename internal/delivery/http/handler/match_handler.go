package handler

import (
	"time"

	"yolearn/internal/delivery/http/dto"
	"yolearn/internal/pkg/response"
	"yolearn/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type sessionRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

type acceptRequest struct {
	ScheduledTime *time.Time `json:"scheduled_time"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/skills/:id/requests", h.Request)

	grp := r.Group("/matches")
	grp.Get("/", h.Sessions)
	grp.Post("/:id/accept", h.Accept)
	grp.Post("/:id/decline", h.Decline)
	grp.Post("/:id/complete", h.Complete)
}

func (h *MatchHandler) Request(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	skillID, err := pathID(c)
	if err != nil {
		return err
	}

	var req sessionRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	created, err := h.uc.RequestSession(c.Context(), userID, skillID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewMatchResponse(created))
}

func (h *MatchHandler) Sessions(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	board, err := h.uc.Sessions(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionsResponse(board))
}

// Accept takes an optional scheduled_time in RFC 3339.
func (h *MatchHandler) Accept(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req acceptRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	updated, err := h.uc.Accept(c.Context(), userID, id, req.ScheduledTime)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(updated))
}

func (h *MatchHandler) Decline(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Decline(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(updated))
}

func (h *MatchHandler) Complete(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Complete(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(updated))
}
