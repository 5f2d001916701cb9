package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	edto "campuscash_backend/internals/features/events/dto"
	emodel "campuscash_backend/internals/features/events/model"
	helper "campuscash_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

func (ctl *EventController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/a/events
func (ctl *EventController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req edto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	event := req.ToModel()
	if err := ctl.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", edto.FromModel(event))
}

// GET /api/events (public, upcoming first)
func (ctl *EventController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "starts_at", "asc", helper.DefaultOpts)

	q := ctl.DB.Model(&emodel.EventModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("event_title ILIKE ? OR event_location ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []*emodel.EventModel
	if err := q.Order("event_starts_at ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonList(c, "ok", edto.FromModels(rows), helper.BuildMeta(total, p))
}

// GET /api/events/:id
func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event emodel.EventModel
	if err := ctl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return helper.JsonOK(c, "ok", edto.FromModel(&event))
}

// PUT /api/a/events/:id
func (ctl *EventController) Update(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req edto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	var event emodel.EventModel
	if err := ctl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	req.ApplyToModel(&event)
	if err := ctl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", edto.FromModel(&event))
}

// POST /api/a/events/:id/image (multipart)
func (ctl *EventController) UploadImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event emodel.EventModel
	if err := ctl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "image file is required")
	}
	url, err := helper.SaveUploadedImage("events", fileHeader)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	event.EventImageURL = &url
	if err := ctl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event image updated", edto.FromModel(&event))
}

// DELETE /api/a/events/:id (soft)
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ctl.DB.Delete(&emodel.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}
