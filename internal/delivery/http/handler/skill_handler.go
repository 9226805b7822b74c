package handler

import (
	"yolearn/internal/delivery/http/dto"
	"yolearn/internal/delivery/http/middleware"
	"yolearn/internal/domain/skill"
	"yolearn/internal/pkg/response"
	"yolearn/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	SkillName   string `json:"skill_name" validate:"required,max=120"`
	SkillType   string `json:"skill_type" validate:"required,oneof=teach learn"`
	Category    string `json:"category" validate:"required,max=60"`
	Level       string `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Description string `json:"description" validate:"max=2000"`
}

type updateSkillRequest struct {
	SkillName   *string `json:"skill_name" validate:"omitempty,max=120"`
	SkillType   *string `json:"skill_type" validate:"omitempty,oneof=teach learn"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
	Level       *string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

// List filters the catalog with q, category and type. owner=<id> lists one
// user's postings instead.
func (h *SkillHandler) List(c fiber.Ctx) error {
	if raw := c.Query("owner"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		items, err := h.uc.ListByOwner(c.Context(), ownerID)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(items))
	}

	items, err := h.uc.Filter(c.Context(), skill.Criteria{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		SkillType: c.Query("type"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(items))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.PostSkill(c.Context(), userID, usecase.SkillInput{
		SkillName:   req.SkillName,
		SkillType:   skill.Type(req.SkillType),
		Category:    req.Category,
		Level:       skill.Level(req.Level),
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewSkillResponse(created))
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(item))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	patch := skill.Patch{
		SkillName:   req.SkillName,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.SkillType != nil {
		t := skill.Type(*req.SkillType)
		patch.SkillType = &t
	}
	if req.Level != nil {
		l := skill.Level(*req.Level)
		patch.Level = &l
	}

	updated, err := h.uc.UpdateSkill(c.Context(), userID, id, patch)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
