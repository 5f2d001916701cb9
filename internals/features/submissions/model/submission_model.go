package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeFile = "file"
	TypeLink = "link"
	TypeText = "text"
	TypeQuiz = "quiz"

	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

func ValidType(t string) bool {
	switch t {
	case TypeFile, TypeLink, TypeText, TypeQuiz:
		return true
	}
	return false
}

// SubmissionModel links a task and a student. One row per (task, user):
// resubmission after rejection is not allowed, staff may still approve a
// rejected row as an administrative override.
type SubmissionModel struct {
	SubmissionID     uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	SubmissionTaskID uuid.UUID `gorm:"column:submission_task_id;type:uuid;not null;uniqueIndex:uq_submissions_task_user" json:"submission_task_id"`
	SubmissionUserID uuid.UUID `gorm:"column:submission_user_id;type:uuid;not null;uniqueIndex:uq_submissions_task_user" json:"submission_user_id"`

	SubmissionType    string  `gorm:"column:submission_type;type:varchar(10);not null" json:"submission_type"`
	SubmissionText    *string `gorm:"column:submission_text"                           json:"submission_text,omitempty"`
	SubmissionLink    *string `gorm:"column:submission_link"                           json:"submission_link,omitempty"`
	SubmissionFileURL *string `gorm:"column:submission_file_url"                       json:"submission_file_url,omitempty"`

	SubmissionAnswers datatypes.JSON `gorm:"column:submission_answers;type:jsonb" json:"submission_answers,omitempty"`
	SubmissionScore   *int           `gorm:"column:submission_score"              json:"submission_score,omitempty"`
	SubmissionPassed  *bool          `gorm:"column:submission_passed"             json:"submission_passed,omitempty"`

	SubmissionStatus       string  `gorm:"column:submission_status;type:varchar(10);not null;default:'pending'" json:"submission_status"`
	SubmissionAdminComment *string `gorm:"column:submission_admin_comment"                                      json:"submission_admin_comment,omitempty"`

	SubmissionCreatedAt time.Time `gorm:"column:submission_created_at;not null;autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"column:submission_updated_at;not null;autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
