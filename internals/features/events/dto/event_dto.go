package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,max=150"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=150"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (r *CreateEventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventTitle:       r.Title,
		EventDescription: r.Description,
		EventLocation:    r.Location,
		EventStartsAt:    r.StartsAt,
		EventEndsAt:      r.EndsAt,
	}
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=150"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=150"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.Title != nil {
		m.EventTitle = *r.Title
	}
	if r.Description != nil {
		m.EventDescription = *r.Description
	}
	if r.Location != nil {
		m.EventLocation = *r.Location
	}
	if r.StartsAt != nil {
		m.EventStartsAt = *r.StartsAt
	}
	if r.EndsAt != nil {
		m.EventEndsAt = r.EndsAt
	}
}

type EventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventStartsAt    time.Time  `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at,omitempty"`
	EventImageURL    *string    `json:"event_image_url,omitempty"`
	EventCreatedAt   time.Time  `json:"event_created_at"`
}

func FromModel(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartsAt:    m.EventStartsAt,
		EventEndsAt:      m.EventEndsAt,
		EventImageURL:    m.EventImageURL,
		EventCreatedAt:   m.EventCreatedAt,
	}
}

func FromModels(rows []*model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
