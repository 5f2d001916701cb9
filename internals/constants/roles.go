package constants

import "fmt"

const (
	RoleUser    = "user"    // student
	RoleFaculty = "faculty" // lecturers/staff managing tasks
	RoleStore   = "store"   // campus store staff verifying coupons
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess = "❌ Only faculty or admin may access %s."
	ErrOnlyAdminCanAccess = "❌ Only admin may access %s."
	ErrOnlyStoreCanAccess = "❌ Only store staff or admin may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

func RoleErrorStore(feature string) string {
	return fmt.Sprintf(ErrOnlyStoreCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleFaculty,
		RoleStore,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleFaculty,
		RoleAdmin,
	}

	StoreRoles = []string{
		RoleStore,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
