package dto

import (
	"github.com/google/uuid"

	"profile-folio/internal/repository"
)

type HobbyResponse struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	HobbyName string    `json:"hobby_name"`
}

func NewHobbyResponse(h repository.Hobby) HobbyResponse {
	return HobbyResponse{
		ID:        h.ID,
		ProfileID: h.ProfileID,
		HobbyName: h.HobbyName,
	}
}

func NewHobbyListResponse(items []repository.Hobby) []HobbyResponse {
	out := make([]HobbyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewHobbyResponse(it))
	}
	return out
}
