package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/contacts/controller"
)

// ContactPublicRoutes mounts the anonymous contact form endpoint.
func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewContactController(db)

	contact := r.Group("/contact")
	contact.Post("/submit", ctl.Submit)
}

// ContactStaffRoutes mounts the inbox for faculty/admin.
func ContactStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewContactController(db)

	contacts := r.Group("/contacts")
	contacts.Get("/", ctl.List)
	contacts.Put("/:id/status", ctl.UpdateStatus)
}
