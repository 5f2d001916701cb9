package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/events/controller"
)

// EventPublicRoutes mounts the read-only event endpoints.
func EventPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	events := r.Group("/events")
	events.Get("/", ctl.List)
	events.Get("/:id", ctl.GetByID)
}

// EventStaffRoutes mounts event management for faculty/admin.
func EventStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	events := r.Group("/events")
	events.Post("/", ctl.Create)
	events.Put("/:id", ctl.Update)
	events.Post("/:id/image", ctl.UploadImage)
	events.Delete("/:id", ctl.Delete)
}
