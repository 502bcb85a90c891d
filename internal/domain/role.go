package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin manages tenants, subscription tiers, and platform billing
	RoleSuperAdmin Role = "super_admin"

	// RoleAdmin manages a single institution's branches, staff, and students
	RoleAdmin Role = "admin"

	// RoleTeacher has read access to attendance and report views for assigned courses
	RoleTeacher Role = "teacher"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleTeacher}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasAnyRole checks if a role matches any of the specified roles
func HasAnyRole(role Role, requiredRoles ...Role) bool {
	return slices.Contains(requiredRoles, role)
}
