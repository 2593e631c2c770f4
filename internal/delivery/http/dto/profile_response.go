package dto

import (
	"github.com/google/uuid"

	"profile-folio/internal/repository"
)

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	MobileNumber   *string   `json:"mobile_number"`
	Linkedin       string    `json:"linkedin"`
	Github         string    `json:"github"`
	CurrentCollege string    `json:"current_college"`
	ProfileImage   string    `json:"profile_image"`
	Headline       string    `json:"headline"`
	AboutText      string    `json:"about_text"`
	Description    string    `json:"description"`
}

func NewProfileResponse(p repository.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		MobileNumber:   p.MobileNumber,
		Linkedin:       p.Linkedin,
		Github:         p.Github,
		CurrentCollege: p.CurrentCollege,
		ProfileImage:   p.ProfileImage,
		Headline:       p.Headline,
		AboutText:      p.AboutText,
		Description:    p.Description,
	}
}
