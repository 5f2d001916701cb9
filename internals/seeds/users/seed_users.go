package users

import (
	"encoding/json"
	"log"
	"os"

	authHelper "campuscash_backend/internals/features/users/auth/helper"
	"campuscash_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

type UserSeed struct {
	UserName      string `json:"user_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	StudentNumber string `json:"student_number"`
	YearClassDept string `json:"year_class_dept"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped.", data.Email)
			continue
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName:          data.UserName,
			UserEmail:         data.Email,
			UserPassword:      hashedPassword,
			UserRole:          data.Role,
			UserYearClassDept: data.YearClassDept,
			UserIsActive:      true,
		}
		if data.StudentNumber != "" {
			sn := data.StudentNumber
			newUser.UserStudentNumber = &sn
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.Email)
		}
	}
}
