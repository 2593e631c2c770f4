package dto

import (
	"github.com/google/uuid"

	"profile-folio/internal/repository"
)

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Name        string    `json:"name"`
	OneLiner    string    `json:"one_liner"`
	TechStack   string    `json:"tech_stack"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Link        string    `json:"link"`
	Images      string    `json:"images"`
}

func NewProjectResponse(p repository.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		ProfileID:   p.ProfileID,
		Name:        p.Name,
		OneLiner:    p.OneLiner,
		TechStack:   p.TechStack,
		Description: p.Description,
		Source:      p.Source,
		Link:        p.Link,
		Images:      p.Images,
	}
}

func NewProjectListResponse(items []repository.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewProjectResponse(it))
	}
	return out
}
