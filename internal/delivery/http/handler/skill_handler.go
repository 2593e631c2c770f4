package handler

import (
	"errors"

	"profile-folio/internal/delivery/http/dto"
	"profile-folio/internal/delivery/http/middleware"
	"profile-folio/internal/pkg/response"
	"profile-folio/internal/usecase"
	"profile-folio/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillRequest struct {
	Application         string `json:"application"`
	ProgrammingLanguage string `json:"programming_language"`
	Technologies        string `json:"technologies"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context(), c.Query("email"), c.Query("mobile"))
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(items))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), email, skillInputFromRequest(req))
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	ws.NotifyProfileChanged("skill", "create", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), email, id, skillInputFromRequest(req))
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	ws.NotifyProfileChanged("skill", "update", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteSkill(c.Context(), email, id); err != nil {
		return mapSkillUsecaseError(err)
	}

	ws.NotifyProfileChanged("skill", "delete", email)
	return response.Success(c, fiber.StatusOK, "Skill deleted", nil)
}

func skillInputFromRequest(req skillRequest) usecase.SkillInput {
	return usecase.SkillInput{
		Application:         req.Application,
		ProgrammingLanguage: req.ProgrammingLanguage,
		Technologies:        req.Technologies,
	}
}

func mapSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileRequired):
		return middleware.NewAppError(fiber.StatusNotFound, "Create Basic Info first", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
