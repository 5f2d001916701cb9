package service

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cmodel "campuscash_backend/internals/features/coupons/model"
	userModel "campuscash_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	require.NoError(t, db.Exec("CREATE SCHEMA "+schema).Error)
	require.NoError(t, db.Exec("SET search_path TO "+schema).Error)
	t.Cleanup(func() {
		_ = db.Exec("DROP SCHEMA " + schema + " CASCADE").Error
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&cmodel.CouponModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, points int) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:     "Test Student",
		UserEmail:    fmt.Sprintf("student-%d@campus.test", time.Now().UnixNano()),
		UserRole:     "user",
		UserPoints:   points,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func userPoints(t *testing.T, db *gorm.DB, u *userModel.UserModel) int {
	t.Helper()
	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "user_id = ?", u.UserID).Error)
	return fresh.UserPoints
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected fiber error, got %v", err)
	return fe.Code
}

func TestRedeemDebitsConditionally(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 100)

	coupon, err := Redeem(db, user.UserID, "Coffee voucher", 60)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(coupon.CouponCode, "CC-"))
	assert.Equal(t, 60, coupon.CouponPointsUsed)
	assert.False(t, coupon.CouponIsUsed)
	assert.Equal(t, 40, userPoints(t, db, user))

	// Balance is now short; the conditional debit must refuse.
	_, err = Redeem(db, user.UserID, "Coffee voucher", 60)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	assert.Equal(t, 40, userPoints(t, db, user))
}

func TestRedeemUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, 100)

	other := userModel.UserModel{
		UserName:  "Ghost",
		UserEmail: fmt.Sprintf("ghost-%d@campus.test", time.Now().UnixNano()),
	}
	// Not persisted; zero-value id.
	_, err := Redeem(db, other.UserID, "Anything", 10)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}

func TestVerifyMarksUsedOnce(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 100)

	coupon, err := Redeem(db, user.UserID, "Snack pack", 30)
	require.NoError(t, err)

	verified, err := Verify(db, coupon.CouponCode)
	require.NoError(t, err)
	assert.True(t, verified.CouponIsUsed)
	require.NotNil(t, verified.CouponUsedAt)

	// Same code a second time is a conflict, not a second use.
	_, err = Verify(db, coupon.CouponCode)
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))
}

func TestVerifyExpiredCoupon(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 100)

	coupon, err := Redeem(db, user.UserID, "Stationery", 20)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&cmodel.CouponModel{}).
		Where("coupon_id = ?", coupon.CouponID).
		UpdateColumn("coupon_expires_at", past).Error)

	_, err = Verify(db, coupon.CouponCode)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestVerifyUnknownCode(t *testing.T) {
	db := setupTestDB(t)

	_, err := Verify(db, "CC-DOESNOTEXIST")
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}
