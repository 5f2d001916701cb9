package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	NotificationID        uuid.UUID `json:"notification_id"`
	NotificationTitle     string    `json:"notification_title"`
	NotificationBody      string    `json:"notification_body"`
	NotificationIsRead    bool      `json:"notification_is_read"`
	NotificationCreatedAt time.Time `json:"notification_created_at"`
}

func FromModel(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationTitle:     m.NotificationTitle,
		NotificationBody:      m.NotificationBody,
		NotificationIsRead:    m.NotificationIsRead,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}

func FromModels(rows []*model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
