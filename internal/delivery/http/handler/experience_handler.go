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

type ExperienceHandler struct {
	uc usecase.ExperienceUsecase
}

type experienceRequest struct {
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

func NewExperienceHandler(uc usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

func (h *ExperienceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListExperiences(c.Context(), c.Query("email"), c.Query("mobile"))
	if err != nil {
		return mapExperienceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExperienceListResponse(items))
}

func (h *ExperienceHandler) Create(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req experienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddExperience(c.Context(), email, experienceInputFromRequest(req))
	if err != nil {
		return mapExperienceUsecaseError(err)
	}

	ws.NotifyProfileChanged("experience", "create", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExperienceResponse(created))
}

func (h *ExperienceHandler) Update(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req experienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateExperience(c.Context(), email, id, experienceInputFromRequest(req))
	if err != nil {
		return mapExperienceUsecaseError(err)
	}

	ws.NotifyProfileChanged("experience", "update", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExperienceResponse(updated))
}

func (h *ExperienceHandler) Delete(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteExperience(c.Context(), email, id); err != nil {
		return mapExperienceUsecaseError(err)
	}

	ws.NotifyProfileChanged("experience", "delete", email)
	return response.Success(c, fiber.StatusOK, "Experience deleted", nil)
}

func experienceInputFromRequest(req experienceRequest) usecase.ExperienceInput {
	return usecase.ExperienceInput{
		CompanyName: req.CompanyName,
		Role:        req.Role,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
}

func mapExperienceUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileRequired):
		return middleware.NewAppError(fiber.StatusNotFound, "Create Basic Info first", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrExperienceNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Experience not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
