package handler

import (
	"yolearn/internal/delivery/http/dto"
	"yolearn/internal/pkg/response"
	"yolearn/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ForumHandler struct {
	uc usecase.ForumUsecase
}

// Title and content emptiness is checked after sanitizing, in the usecase.
type questionRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"max=5000"`
	Tags    string `json:"tags" validate:"max=500"`
}

type answerRequest struct {
	Content string `json:"content" validate:"max=5000"`
}

func NewForumHandler(uc usecase.ForumUsecase) *ForumHandler {
	return &ForumHandler{uc: uc}
}

func (h *ForumHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/forum/questions")
	grp.Get("/", h.List)
	grp.Post("/", h.Ask)
	grp.Get("/:id", h.Get)
	grp.Post("/:id/answers", h.Answer)
}

func (h *ForumHandler) List(c fiber.Ctx) error {
	qs, err := h.uc.ListQuestions(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQuestionListResponse(qs))
}

func (h *ForumHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	q, err := h.uc.GetQuestion(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQuestionResponse(q))
}

func (h *ForumHandler) Ask(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req questionRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	q, err := h.uc.PostQuestion(c.Context(), userID, usecase.QuestionInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewQuestionResponse(q))
}

func (h *ForumHandler) Answer(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	q, err := h.uc.PostAnswer(c.Context(), id, userID, req.Content)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewQuestionResponse(q))
}
