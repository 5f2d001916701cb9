package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/volunteers/model"
)

type ApplyRequest struct {
	Activity   string `json:"activity" validate:"required,max=150"`
	Motivation string `json:"motivation" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type VolunteerResponse struct {
	VolunteerID         uuid.UUID `json:"volunteer_id"`
	VolunteerUserID     uuid.UUID `json:"volunteer_user_id"`
	VolunteerActivity   string    `json:"volunteer_activity"`
	VolunteerMotivation string    `json:"volunteer_motivation"`
	VolunteerStatus     string    `json:"volunteer_status"`
	VolunteerCreatedAt  time.Time `json:"volunteer_created_at"`
}

func FromModel(m *model.VolunteerModel) VolunteerResponse {
	return VolunteerResponse{
		VolunteerID:         m.VolunteerID,
		VolunteerUserID:     m.VolunteerUserID,
		VolunteerActivity:   m.VolunteerActivity,
		VolunteerMotivation: m.VolunteerMotivation,
		VolunteerStatus:     m.VolunteerStatus,
		VolunteerCreatedAt:  m.VolunteerCreatedAt,
	}
}

func FromModels(rows []*model.VolunteerModel) []VolunteerResponse {
	out := make([]VolunteerResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
