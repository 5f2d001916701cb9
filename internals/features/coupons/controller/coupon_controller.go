package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cdto "campuscash_backend/internals/features/coupons/dto"
	cmodel "campuscash_backend/internals/features/coupons/model"
	cservice "campuscash_backend/internals/features/coupons/service"
	helper "campuscash_backend/internals/helpers"
)

type CouponController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{DB: db}
}

func (ctl *CouponController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/u/coupons/redeem
func (ctl *CouponController) Redeem(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req cdto.RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	coupon, err := cservice.Redeem(ctl.DB, userID, req.RewardName, req.Points)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Coupon redeemed", cdto.FromModel(coupon))
}

// GET /api/u/coupons/my
func (ctl *CouponController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []*cmodel.CouponModel
	if err := ctl.DB.
		Where("coupon_user_id = ?", userID).
		Order("coupon_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch coupons")
	}
	return helper.JsonList(c, "ok", cdto.FromModels(rows), nil)
}

// POST /api/s/coupons/verify
func (ctl *CouponController) Verify(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	coupon, err := cservice.Verify(ctl.DB, req.Code)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Coupon verified", cdto.FromModel(coupon))
}
