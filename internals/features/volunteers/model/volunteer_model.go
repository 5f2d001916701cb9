package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type VolunteerModel struct {
	VolunteerID     uuid.UUID `gorm:"column:volunteer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"volunteer_id"`
	VolunteerUserID uuid.UUID `gorm:"column:volunteer_user_id;type:uuid;not null;index" json:"volunteer_user_id"`

	VolunteerActivity   string `gorm:"column:volunteer_activity;type:varchar(150);not null" json:"volunteer_activity"`
	VolunteerMotivation string `gorm:"column:volunteer_motivation;type:text" json:"volunteer_motivation"`

	VolunteerStatus string `gorm:"column:volunteer_status;type:varchar(10);not null;default:'pending'" json:"volunteer_status"`

	VolunteerCreatedAt time.Time `gorm:"column:volunteer_created_at;not null;autoCreateTime" json:"volunteer_created_at"`
	VolunteerUpdatedAt time.Time `gorm:"column:volunteer_updated_at;not null;autoUpdateTime" json:"volunteer_updated_at"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}
