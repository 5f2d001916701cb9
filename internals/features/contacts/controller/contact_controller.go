package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cdto "campuscash_backend/internals/features/contacts/dto"
	cmodel "campuscash_backend/internals/features/contacts/model"
	helper "campuscash_backend/internals/helpers"
)

type ContactController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

func (ctl *ContactController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/contact/submit (public)
func (ctl *ContactController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	row := req.ToModel()
	if err := ctl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit message")
	}
	return helper.JsonCreated(c, "Message received", cdto.FromModel(row))
}

// GET /api/a/contacts?status=
func (ctl *ContactController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&cmodel.ContactModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !cmodel.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status (new|resolved)")
		}
		q = q.Where("contact_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	var rows []*cmodel.ContactModel
	if err := q.Order("contact_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}
	return helper.JsonList(c, "ok", cdto.FromModels(rows), helper.BuildMeta(total, p))
}

// PUT /api/a/contacts/:id/status
func (ctl *ContactController) UpdateStatus(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}

	var req cdto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	var row cmodel.ContactModel
	if err := ctl.DB.First(&row, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}

	row.ContactStatus = req.Status
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	return helper.JsonUpdated(c, "Message updated", cdto.FromModel(&row))
}
