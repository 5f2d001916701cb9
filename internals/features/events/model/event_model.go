package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`

	EventTitle       string `gorm:"column:event_title;type:varchar(150);not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string `gorm:"column:event_location;type:varchar(150)" json:"event_location"`

	EventStartsAt time.Time  `gorm:"column:event_starts_at;not null" json:"event_starts_at"`
	EventEndsAt   *time.Time `gorm:"column:event_ends_at" json:"event_ends_at,omitempty"`

	EventImageURL *string `gorm:"column:event_image_url" json:"event_image_url,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;not null;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;not null;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"-"`
}

func (EventModel) TableName() string {
	return "events"
}
