package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "campuscash_backend/internals/features/users/user/controller"
)

// UserRoutes: self-service profile endpoints (mounted under /api/u)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	r.Get("/me", ctl.Me)
	r.Put("/me", ctl.UpdateMe)
	r.Post("/me/photo", ctl.UploadPhoto)
}

// UserAdminRoutes: staff-side user management (mounted under /api/a)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctl.List)
	users.Put("/:id", ctl.Update)
	users.Put("/:id/deactivate", ctl.Deactivate)
}
