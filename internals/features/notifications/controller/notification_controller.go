package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ndto "campuscash_backend/internals/features/notifications/dto"
	nmodel "campuscash_backend/internals/features/notifications/model"
	helper "campuscash_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications/my?unread_only=true
func (ctl *NotificationController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.Where("notification_user_id = ?", userID)
	if strings.EqualFold(c.Query("unread_only"), "true") {
		q = q.Where("notification_is_read = FALSE")
	}

	var rows []*nmodel.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonList(c, "ok", ndto.FromModels(rows), nil)
}

// PUT /api/u/notifications/read/:id
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctl.DB.Model(&nmodel.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		UpdateColumn("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked read", fiber.Map{"notification_id": id})
}

// PUT /api/u/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Model(&nmodel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		UpdateColumn("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonUpdated(c, "All notifications marked read", fiber.Map{"updated": res.RowsAffected})
}
