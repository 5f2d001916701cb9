package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	vdto "campuscash_backend/internals/features/volunteers/dto"
	vmodel "campuscash_backend/internals/features/volunteers/model"
	helper "campuscash_backend/internals/helpers"
)

type VolunteerController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db}
}

func (ctl *VolunteerController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/u/volunteers/apply
func (ctl *VolunteerController) Apply(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req vdto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	row := vmodel.VolunteerModel{
		VolunteerUserID:     userID,
		VolunteerActivity:   req.Activity,
		VolunteerMotivation: req.Motivation,
		VolunteerStatus:     vmodel.StatusPending,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create application")
	}
	return helper.JsonCreated(c, "Application submitted", vdto.FromModel(&row))
}

// GET /api/u/volunteers/my
func (ctl *VolunteerController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []*vmodel.VolunteerModel
	if err := ctl.DB.
		Where("volunteer_user_id = ?", userID).
		Order("volunteer_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonList(c, "ok", vdto.FromModels(rows), nil)
}

// GET /api/a/volunteers?status=
func (ctl *VolunteerController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&vmodel.VolunteerModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !vmodel.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status (pending|approved|rejected)")
		}
		q = q.Where("volunteer_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	var rows []*vmodel.VolunteerModel
	if err := q.Order("volunteer_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonList(c, "ok", vdto.FromModels(rows), helper.BuildMeta(total, p))
}

// PUT /api/a/volunteers/:id/status
func (ctl *VolunteerController) UpdateStatus(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var req vdto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	var row vmodel.VolunteerModel
	if err := ctl.DB.First(&row, "volunteer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch application")
	}

	row.VolunteerStatus = req.Status
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application")
	}
	return helper.JsonUpdated(c, "Application updated", vdto.FromModel(&row))
}
