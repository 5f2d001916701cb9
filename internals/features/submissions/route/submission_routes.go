package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/submissions/controller"
)

// SubmissionUserRoutes mounts the student-facing submission endpoints.
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubmissionController(db)

	r.Post("/tasks/:id/submit", ctl.Submit)
	r.Get("/submissions/my", ctl.MySubmissions)
}

// SubmissionStaffRoutes mounts the review endpoints for faculty/admin.
func SubmissionStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubmissionController(db)

	r.Get("/submissions", ctl.List)
	r.Get("/tasks/:id/submissions", ctl.ByTask)
	r.Put("/submissions/:id/approve", ctl.Approve)
	r.Put("/submissions/:id/reject", ctl.Reject)
}
