package service

import "errors"

var (
	// Tenant errors
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrTierNotFound        = errors.New("subscription tier not found")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Auth errors. Unknown email and wrong password share one message so the
	// login route cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Resource errors
	ErrBranchNotFound     = errors.New("branch not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrBillingNotFound    = errors.New("billing record not found")

	// Validation errors
	ErrTenantIDRequired  = errors.New("tenant_id is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidCycle      = errors.New("invalid billing cycle")
	ErrInvalidCountRange = errors.New("student_count_min must not exceed student_count_max")
)
