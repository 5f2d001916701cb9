package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNew      = "new"
	StatusResolved = "resolved"
)

func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusResolved
}

type ContactModel struct {
	ContactID uuid.UUID `gorm:"column:contact_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"contact_id"`

	ContactName    string `gorm:"column:contact_name;type:varchar(100);not null" json:"contact_name"`
	ContactEmail   string `gorm:"column:contact_email;type:varchar(150);not null" json:"contact_email"`
	ContactSubject string `gorm:"column:contact_subject;type:varchar(150)" json:"contact_subject"`
	ContactMessage string `gorm:"column:contact_message;type:text;not null" json:"contact_message"`

	ContactStatus string `gorm:"column:contact_status;type:varchar(10);not null;default:'new'" json:"contact_status"`

	ContactCreatedAt time.Time `gorm:"column:contact_created_at;not null;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time `gorm:"column:contact_updated_at;not null;autoUpdateTime" json:"contact_updated_at"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
