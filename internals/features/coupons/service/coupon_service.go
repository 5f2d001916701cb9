package service

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "campuscash_backend/internals/features/coupons/model"
)

// Unambiguous alphabet: no 0/O, 1/I/L.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 10

// DefaultValidity is how long a freshly redeemed coupon stays redeemable
// at a store.
const DefaultValidity = 30 * 24 * time.Hour

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return "CC-" + string(buf), nil
}

// Redeem debits the user and issues a coupon in one transaction. The debit
// is a single conditional UPDATE guarded by `user_points >= ?`, so a stale
// balance read can never drive points negative.
func Redeem(db *gorm.DB, userID uuid.UUID, rewardName string, points int) (*cmodel.CouponModel, error) {
	if points <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "points must be positive")
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(DefaultValidity)

	coupon := cmodel.CouponModel{
		CouponUserID:     userID,
		CouponCode:       code,
		CouponRewardName: rewardName,
		CouponPointsUsed: points,
		CouponExpiresAt:  &expiresAt,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Table("users").
			Where("user_id = ? AND user_points >= ?", userID, points).
			UpdateColumn("user_points", gorm.Expr("user_points - ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the user vanished or the balance is short.
			var exists bool
			if err := tx.Raw("SELECT EXISTS (SELECT 1 FROM users WHERE user_id = ?)", userID).
				Scan(&exists).Error; err != nil {
				return err
			}
			if !exists {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Insufficient points")
		}
		return tx.Create(&coupon).Error
	})
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Verify marks a coupon used on behalf of a store. The mutation is a single
// conditional UPDATE on (code, not used), so two cashiers racing on the same
// code resolve to exactly one success.
func Verify(db *gorm.DB, code string) (*cmodel.CouponModel, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "code is required")
	}

	var coupon cmodel.CouponModel

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&cmodel.CouponModel{}).
			Where("coupon_code = ? AND coupon_is_used = FALSE AND (coupon_expires_at IS NULL OR coupon_expires_at > ?)", code, now).
			Updates(map[string]interface{}{
				"coupon_is_used": true,
				"coupon_used_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Distinguish missing / used / expired for the cashier.
			var existing cmodel.CouponModel
			if err := tx.First(&existing, "coupon_code = ?", code).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Coupon not found")
				}
				return err
			}
			if existing.CouponIsUsed {
				return fiber.NewError(fiber.StatusConflict, "Coupon already used")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Coupon expired")
		}
		return tx.First(&coupon, "coupon_code = ?", code).Error
	})
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
