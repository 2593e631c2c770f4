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

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectRequest struct {
	Name        string `json:"name"`
	OneLiner    string `json:"one_liner"`
	TechStack   string `json:"tech_stack"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	Images      string `json:"images"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context(), c.Query("email"), c.Query("mobile"))
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectListResponse(items))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddProject(c.Context(), email, projectInputFromRequest(req))
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	ws.NotifyProfileChanged("project", "create", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateProject(c.Context(), email, id, projectInputFromRequest(req))
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	ws.NotifyProfileChanged("project", "update", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteProject(c.Context(), email, id); err != nil {
		return mapProjectUsecaseError(err)
	}

	ws.NotifyProfileChanged("project", "delete", email)
	return response.Success(c, fiber.StatusOK, "Project deleted", nil)
}

func projectInputFromRequest(req projectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        req.Name,
		OneLiner:    req.OneLiner,
		TechStack:   req.TechStack,
		Description: req.Description,
		Source:      req.Source,
		Link:        req.Link,
		Images:      req.Images,
	}
}

func mapProjectUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileRequired):
		return middleware.NewAppError(fiber.StatusNotFound, "Create Basic Info first", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
