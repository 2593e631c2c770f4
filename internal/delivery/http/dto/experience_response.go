package dto

import (
	"github.com/google/uuid"

	"profile-folio/internal/repository"
)

type ExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	CompanyName string    `json:"company_name"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description"`
}

func NewExperienceResponse(e repository.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		CompanyName: e.CompanyName,
		Role:        e.Role,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
	}
}

func NewExperienceListResponse(items []repository.Experience) []ExperienceResponse {
	out := make([]ExperienceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewExperienceResponse(it))
	}
	return out
}
