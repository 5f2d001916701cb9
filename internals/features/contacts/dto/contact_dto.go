package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/contacts/model"
)

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=150"`
	Subject string `json:"subject" validate:"max=150"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *SubmitContactRequest) ToModel() *model.ContactModel {
	return &model.ContactModel{
		ContactName:    r.Name,
		ContactEmail:   r.Email,
		ContactSubject: r.Subject,
		ContactMessage: r.Message,
		ContactStatus:  model.StatusNew,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new resolved"`
}

type ContactResponse struct {
	ContactID        uuid.UUID `json:"contact_id"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactSubject   string    `json:"contact_subject"`
	ContactMessage   string    `json:"contact_message"`
	ContactStatus    string    `json:"contact_status"`
	ContactCreatedAt time.Time `json:"contact_created_at"`
}

func FromModel(m *model.ContactModel) ContactResponse {
	return ContactResponse{
		ContactID:        m.ContactID,
		ContactName:      m.ContactName,
		ContactEmail:     m.ContactEmail,
		ContactSubject:   m.ContactSubject,
		ContactMessage:   m.ContactMessage,
		ContactStatus:    m.ContactStatus,
		ContactCreatedAt: m.ContactCreatedAt,
	}
}

func FromModels(rows []*model.ContactModel) []ContactResponse {
	out := make([]ContactResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
