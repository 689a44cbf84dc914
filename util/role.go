package util

// Staff roles. These map one-to-one onto the casbin policy subjects.
const (
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
	RoleCashier    = "cashier"
	RoleWaitress   = "waitress"
	RoleChef       = "chef"
)

// IsSupportedRole returns true if the role is supported
func IsSupportedRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleManager, RoleCashier, RoleWaitress, RoleChef:
		return true
	}
	return false
}

// HasRole checks if the user's role matches any of the allowed roles
func HasRole(userRole string, allowedRoles ...string) bool {
	for _, role := range allowedRoles {
		if userRole == role {
			return true
		}
	}
	return false
}
