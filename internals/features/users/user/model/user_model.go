package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Users are never hard-deleted;
// deactivation flips user_is_active instead.
type UserModel struct {
	UserID            uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName          string    `gorm:"column:user_name;size:50;not null"                             json:"user_name"`
	UserEmail         string    `gorm:"column:user_email;size:255;unique;not null"                    json:"user_email"`
	UserStudentNumber *string   `gorm:"column:user_student_number;size:30"                            json:"user_student_number,omitempty"`
	UserPassword      string    `gorm:"column:user_password"                                          json:"-"`
	UserGoogleID      *string   `gorm:"column:user_google_id;size:255;unique"                         json:"-"`

	UserRole          string  `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`
	UserPoints        int     `gorm:"column:user_points;not null;default:0;check:user_points >= 0" json:"user_points"`
	UserYearClassDept string  `gorm:"column:user_year_class_dept;size:120"                       json:"user_year_class_dept"`
	UserImageURL      *string `gorm:"column:user_image_url"                                      json:"user_image_url,omitempty"`
	UserIsActive      bool    `gorm:"column:user_is_active;not null;default:true"                json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

// TableName overrides the table name used by GORM.
func (UserModel) TableName() string {
	return "users"
}
