package handler

import (
	"errors"

	"profile-folio/internal/delivery/http/dto"
	"profile-folio/internal/delivery/http/middleware"
	"profile-folio/internal/pkg/response"
	"profile-folio/internal/usecase"
	"profile-folio/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	MobileNumber   *string `json:"mobile_number"`
	Linkedin       string  `json:"linkedin"`
	Github         string  `json:"github"`
	CurrentCollege string  `json:"current_college"`
	ProfileImage   string  `json:"profile_image"`
	Headline       string  `json:"headline"`
	AboutText      string  `json:"about_text"`
	Description    string  `json:"description"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Resolve(c.Context(), c.Query("email"), c.Query("mobile"))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Upsert(c.Context(), email, usecase.ProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		MobileNumber:   req.MobileNumber,
		Linkedin:       req.Linkedin,
		Github:         req.Github,
		CurrentCollege: req.CurrentCollege,
		ProfileImage:   req.ProfileImage,
		Headline:       req.Headline,
		AboutText:      req.AboutText,
		Description:    req.Description,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	ws.NotifyProfileChanged("basic_info", "upsert", p.Email)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	email, ok := middleware.AuthedEmail(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.Delete(c.Context(), email); err != nil {
		return mapProfileUsecaseError(err)
	}

	ws.NotifyProfileChanged("basic_info", "delete", email)
	return response.Success(c, fiber.StatusOK, "Profile deleted", nil)
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You can only create or update the profile for your own email", nil, err)
	case errors.Is(err, usecase.ErrDuplicateMobile):
		return middleware.NewAppError(fiber.StatusConflict, "Mobile number already exists", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
