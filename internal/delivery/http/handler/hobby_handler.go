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

type HobbyHandler struct {
	uc usecase.HobbyUsecase
}

type hobbyRequest struct {
	HobbyName string `json:"hobby_name"`
}

func NewHobbyHandler(uc usecase.HobbyUsecase) *HobbyHandler {
	return &HobbyHandler{uc: uc}
}

func (h *HobbyHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListHobbies(c.Context(), c.Query("email"), c.Query("mobile"))
	if err != nil {
		return mapHobbyUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHobbyListResponse(items))
}

func (h *HobbyHandler) Create(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req hobbyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddHobby(c.Context(), email, usecase.HobbyInput{HobbyName: req.HobbyName})
	if err != nil {
		return mapHobbyUsecaseError(err)
	}

	ws.NotifyProfileChanged("hobby", "create", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHobbyResponse(created))
}

func (h *HobbyHandler) Update(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req hobbyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateHobby(c.Context(), email, id, usecase.HobbyInput{HobbyName: req.HobbyName})
	if err != nil {
		return mapHobbyUsecaseError(err)
	}

	ws.NotifyProfileChanged("hobby", "update", email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHobbyResponse(updated))
}

func (h *HobbyHandler) Delete(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteHobby(c.Context(), email, id); err != nil {
		return mapHobbyUsecaseError(err)
	}

	ws.NotifyProfileChanged("hobby", "delete", email)
	return response.Success(c, fiber.StatusOK, "Hobby deleted", nil)
}

func mapHobbyUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileRequired):
		return middleware.NewAppError(fiber.StatusNotFound, "Create Basic Info first", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrHobbyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Hobby not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
