package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "campuscash_backend/internals/features/tasks/controller"
)

// TaskUserRoutes: student-facing task endpoints (mounted under /api/u)
func TaskUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := taskController.NewTaskController(db)

	tasks := r.Group("/tasks")
	tasks.Get("/active", ctl.ListActive)
}

// TaskStaffRoutes: faculty/admin task management (mounted under /api/a)
func TaskStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := taskController.NewTaskController(db)

	tasks := r.Group("/tasks")
	tasks.Post("/", ctl.Create)
	tasks.Get("/", ctl.List)
	tasks.Get("/:id", ctl.GetByID)
	tasks.Put("/:id", ctl.Update)
	tasks.Delete("/:id", ctl.Delete)
	tasks.Get("/:id/candidates", ctl.Candidates)
	tasks.Post("/:id/award", ctl.Award)
}
