package entity

// Role is the closed set of roles a user can hold in the system.
type Role string

const (
	// RoleSystemAdmin can manage users and stores and see platform-wide stats.
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
	// RoleNormalUser can browse stores and submit ratings.
	RoleNormalUser Role = "NORMAL_USER"
	// RoleStoreOwner owns a store and sees its ratings.
	RoleStoreOwner Role = "STORE_OWNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystemAdmin, RoleNormalUser, RoleStoreOwner:
		return true
	default:
		return false
	}
}
