package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuscash_backend/internals/constants"
	contactRoute "campuscash_backend/internals/features/contacts/route"
	couponRoute "campuscash_backend/internals/features/coupons/route"
	eventRoute "campuscash_backend/internals/features/events/route"
	notificationRoute "campuscash_backend/internals/features/notifications/route"
	submissionRoute "campuscash_backend/internals/features/submissions/route"
	taskRoute "campuscash_backend/internals/features/tasks/route"
	authRoute "campuscash_backend/internals/features/users/auth/route"
	userRoute "campuscash_backend/internals/features/users/user/route"
	volunteerRoute "campuscash_backend/internals/features/volunteers/route"
	authmw "campuscash_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the full REST surface:
//
//	/api    public
//	/api/u  any authenticated user
//	/api/a  faculty or admin
//	/api/s  store staff or admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Public
	authRoute.AuthPublicRoutes(api, db)
	contactRoute.ContactPublicRoutes(api, db)
	eventRoute.EventPublicRoutes(api, db)

	// Authenticated
	user := api.Group("/u", authmw.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	userRoute.UserRoutes(user, db)
	taskRoute.TaskUserRoutes(user, db)
	submissionRoute.SubmissionUserRoutes(user, db)
	couponRoute.CouponUserRoutes(user, db)
	volunteerRoute.VolunteerUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)

	// Staff (faculty/admin)
	staff := api.Group("/a",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles(constants.RoleErrorStaff("management endpoints"), constants.StaffRoles...),
	)
	taskRoute.TaskStaffRoutes(staff, db)
	submissionRoute.SubmissionStaffRoutes(staff, db)
	userRoute.UserAdminRoutes(staff, db)
	eventRoute.EventStaffRoutes(staff, db)
	volunteerRoute.VolunteerStaffRoutes(staff, db)
	contactRoute.ContactStaffRoutes(staff, db)

	// Store (store/admin)
	store := api.Group("/s",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles(constants.RoleErrorStore("coupon verification"), constants.StoreRoles...),
	)
	couponRoute.CouponStoreRoutes(store, db)
}
