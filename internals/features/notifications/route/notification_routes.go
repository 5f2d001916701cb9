package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/notifications/controller"
)

// NotificationUserRoutes mounts the in-app notification endpoints.
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	notifications := r.Group("/notifications")
	notifications.Get("/my", ctl.My)
	notifications.Put("/read/:id", ctl.MarkRead)
	notifications.Put("/read-all", ctl.MarkAllRead)
}
