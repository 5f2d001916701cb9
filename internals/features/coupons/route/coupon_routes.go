package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campuscash_backend/internals/features/coupons/controller"
)

// CouponUserRoutes mounts redemption and listing for the logged-in student.
func CouponUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCouponController(db)

	coupons := r.Group("/coupons")
	coupons.Post("/redeem", ctl.Redeem)
	coupons.Get("/my", ctl.My)
}

// CouponStoreRoutes mounts the cashier-facing verification endpoint.
func CouponStoreRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCouponController(db)

	coupons := r.Group("/coupons")
	coupons.Post("/verify", ctl.Verify)
}
