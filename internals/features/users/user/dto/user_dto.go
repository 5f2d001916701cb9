package dto

import (
	"time"

	"github.com/google/uuid"

	"campuscash_backend/internals/features/users/user/model"
)

type UserResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email"`
	UserStudentNumber *string   `json:"user_student_number,omitempty"`
	UserRole          string    `json:"user_role"`
	UserPoints        int       `json:"user_points"`
	UserYearClassDept string    `json:"user_year_class_dept"`
	UserImageURL      *string   `json:"user_image_url,omitempty"`
	UserIsActive      bool      `json:"user_is_active"`
	UserCreatedAt     time.Time `json:"user_created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:            m.UserID,
		UserName:          m.UserName,
		UserEmail:         m.UserEmail,
		UserStudentNumber: m.UserStudentNumber,
		UserRole:          m.UserRole,
		UserPoints:        m.UserPoints,
		UserYearClassDept: m.UserYearClassDept,
		UserImageURL:      m.UserImageURL,
		UserIsActive:      m.UserIsActive,
		UserCreatedAt:     m.UserCreatedAt,
	}
}

func FromModels(rows []*model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}

// UpdateProfileRequest: fields a student may change on their own profile.
type UpdateProfileRequest struct {
	UserName          *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserYearClassDept *string `json:"user_year_class_dept" validate:"omitempty,max=120"`
}

// AdminUpdateUserRequest: staff-side edits (profile fields, role).
type AdminUpdateUserRequest struct {
	UserName          *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserStudentNumber *string `json:"user_student_number" validate:"omitempty,max=30"`
	UserYearClassDept *string `json:"user_year_class_dept" validate:"omitempty,max=120"`
	UserRole          *string `json:"user_role" validate:"omitempty,oneof=user faculty store admin"`
}

func (r *AdminUpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserStudentNumber != nil {
		m.UserStudentNumber = r.UserStudentNumber
	}
	if r.UserYearClassDept != nil {
		m.UserYearClassDept = *r.UserYearClassDept
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
}
