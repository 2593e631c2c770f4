package dto

import (
	"github.com/google/uuid"

	"profile-folio/internal/repository"
)

type SkillResponse struct {
	ID                  uuid.UUID `json:"id"`
	ProfileID           uuid.UUID `json:"profile_id"`
	Application         string    `json:"application"`
	ProgrammingLanguage string    `json:"programming_language"`
	Technologies        string    `json:"technologies"`
}

func NewSkillResponse(s repository.Skill) SkillResponse {
	return SkillResponse{
		ID:                  s.ID,
		ProfileID:           s.ProfileID,
		Application:         s.Application,
		ProgrammingLanguage: s.ProgrammingLanguage,
		Technologies:        s.Technologies,
	}
}

func NewSkillListResponse(items []repository.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillResponse(it))
	}
	return out
}
