package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campuscash_backend/internals/features/users/auth/controller"
	"campuscash_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login endpoints (mounted under /api)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Post("/login-google", ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
}

// AuthUserRoutes: endpoints requiring a valid session (mounted under /api/u)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Put("/change-password", ctl.ChangePassword)
}
