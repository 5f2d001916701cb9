package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel stores access tokens invalidated by logout. Rows carry
// expires_at so stale entries can be ignored on read; there is no background
// cleanup job.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"token_blacklist_id"`
	Token            string         `gorm:"column:token;type:text;not null;uniqueIndex"                              json:"token"`
	ExpiresAt        time.Time      `gorm:"column:expires_at;not null"                                               json:"expires_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null;autoCreateTime"                                json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"                                                  json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
