package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuscash_backend/internals/configs"
	authHelper "campuscash_backend/internals/features/users/auth/helper"
	authModel "campuscash_backend/internals/features/users/auth/model"
	userModel "campuscash_backend/internals/features/users/user/model"
	helpers "campuscash_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	UserName          string  `json:"user_name"`
	UserEmail         string  `json:"user_email"`
	Password          string  `json:"password"`
	UserStudentNumber *string `json:"user_student_number"`
	UserYearClassDept string  `json:"user_year_class_dept"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.UserEmail = strings.ToLower(strings.TrimSpace(input.UserEmail))
	if err := authHelper.ValidateRegisterInput(input.UserName, input.UserEmail, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:          strings.TrimSpace(input.UserName),
		UserEmail:         input.UserEmail,
		UserPassword:      passwordHash,
		UserStudentNumber: input.UserStudentNumber,
		UserYearClassDept: strings.TrimSpace(input.UserYearClassDept),
		UserRole:          "user",
	}

	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{"user_id": user.UserID})
}

/* ==========================
   LOGIN (email/student number + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.
		Where("user_email = ? OR user_student_number = ?", strings.ToLower(input.Identifier), input.Identifier).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier or password incorrect")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier or password incorrect")
	}

	return issueTokens(c, user)
}

/* ==========================
   LOGIN WITH GOOGLE (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Failed to decode Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = db.Where("user_google_id = ? OR user_email = ?", googleID, email).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
		}
		// First Google sign-in creates the account
		user = userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    email,
			UserGoogleID: &googleID,
			UserRole:     "user",
		}
		if err := db.Create(&user).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	} else if user.UserGoogleID == nil {
		_ = db.Model(&user).Update("user_google_id", googleID).Error
	}

	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}

	return issueTokens(c, user)
}

/* ==========================
   LOGOUT / REFRESH
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Missing bearer token")
	}
	token := strings.TrimSpace(parts[1])

	entry := authModel.TokenBlacklistModel{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(helpers.AccessTokenTTL),
	}
	if err := db.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helpers.JsonOK(c, "Logged out", nil)
}

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.RefreshToken) == "" {
		// cookie fallback
		input.RefreshToken = c.Cookies("refresh_token")
	}
	if strings.TrimSpace(input.RefreshToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "refresh_token is required")
	}

	userID, err := helpers.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}

	return issueTokens(c, user)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "new_password must be at least 8 characters")
	}

	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	hashed, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&user).Update("user_password", hashed).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password changed", nil)
}

/* ==========================
   Token issuing
========================== */

func issueTokens(c *fiber.Ctx, user userModel.UserModel) error {
	access, err := helpers.GenerateAccessToken(user.UserID, user.UserName, user.UserRole)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	refresh, err := helpers.GenerateRefreshToken(user.UserID)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(helpers.AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(helpers.RefreshTokenTTL),
	})

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"user_id":              user.UserID,
			"user_name":            user.UserName,
			"user_email":           user.UserEmail,
			"user_role":            user.UserRole,
			"user_points":          user.UserPoints,
			"user_year_class_dept": user.UserYearClassDept,
		},
	})
}
