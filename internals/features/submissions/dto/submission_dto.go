package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/submissions/model"
)

type CreateSubmissionRequest struct {
	Type    string `json:"type" validate:"required,oneof=file link text quiz"`
	Text    string `json:"text"`
	Link    string `json:"link" validate:"omitempty,url"`
	Answers []int  `json:"answers"`
}

type ReviewRequest struct {
	AdminComment string `json:"admin_comment" validate:"max=500"`
}

type SubmissionResponse struct {
	SubmissionID           uuid.UUID `json:"submission_id"`
	SubmissionTaskID       uuid.UUID `json:"submission_task_id"`
	SubmissionUserID       uuid.UUID `json:"submission_user_id"`
	SubmissionType         string    `json:"submission_type"`
	SubmissionText         *string   `json:"submission_text,omitempty"`
	SubmissionLink         *string   `json:"submission_link,omitempty"`
	SubmissionFileURL      *string   `json:"submission_file_url,omitempty"`
	SubmissionScore        *int      `json:"submission_score,omitempty"`
	SubmissionPassed       *bool     `json:"submission_passed,omitempty"`
	SubmissionStatus       string    `json:"submission_status"`
	SubmissionAdminComment *string   `json:"submission_admin_comment,omitempty"`
	SubmissionCreatedAt    time.Time `json:"submission_created_at"`
}

func FromModel(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionTaskID:       m.SubmissionTaskID,
		SubmissionUserID:       m.SubmissionUserID,
		SubmissionType:         m.SubmissionType,
		SubmissionText:         m.SubmissionText,
		SubmissionLink:         m.SubmissionLink,
		SubmissionFileURL:      m.SubmissionFileURL,
		SubmissionScore:        m.SubmissionScore,
		SubmissionPassed:       m.SubmissionPassed,
		SubmissionStatus:       m.SubmissionStatus,
		SubmissionAdminComment: m.SubmissionAdminComment,
		SubmissionCreatedAt:    m.SubmissionCreatedAt,
	}
}

func FromModels(rows []*model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
