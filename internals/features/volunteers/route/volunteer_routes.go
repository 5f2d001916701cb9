package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/volunteers/controller"
)

// VolunteerUserRoutes mounts application endpoints for students.
func VolunteerUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewVolunteerController(db)

	volunteers := r.Group("/volunteers")
	volunteers.Post("/apply", ctl.Apply)
	volunteers.Get("/my", ctl.My)
}

// VolunteerStaffRoutes mounts review endpoints for faculty/admin.
func VolunteerStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewVolunteerController(db)

	volunteers := r.Group("/volunteers")
	volunteers.Get("/", ctl.List)
	volunteers.Put("/:id/status", ctl.UpdateStatus)
}
