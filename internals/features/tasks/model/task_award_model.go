package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskAwardModel is the award ledger: the authoritative record of who has
// already been credited for a task. The unique (task, user) index is what
// makes the credit path safe under concurrent requests.
type TaskAwardModel struct {
	TaskAwardID     uuid.UUID `gorm:"column:task_award_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"task_award_id"`
	TaskAwardTaskID uuid.UUID `gorm:"column:task_award_task_id;type:uuid;not null;uniqueIndex:uq_task_awards_task_user" json:"task_award_task_id"`
	TaskAwardUserID uuid.UUID `gorm:"column:task_award_user_id;type:uuid;not null;uniqueIndex:uq_task_awards_task_user" json:"task_award_user_id"`
	TaskAwardPoints int       `gorm:"column:task_award_points;not null"                                   json:"task_award_points"`
	TaskAwardedAt   time.Time `gorm:"column:task_awarded_at;not null;autoCreateTime"                      json:"task_awarded_at"`
}

func (TaskAwardModel) TableName() string {
	return "task_awards"
}
