package dto

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@acadify.io"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type CreateInstitutionRequest struct {
	Name         string `json:"name" binding:"required" example:"Springfield Academy"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email" example:"office@springfield.edu"`
	Phone        string `json:"phone" example:"+1-555-0100"`
	Address      string `json:"address" example:"742 Evergreen Terrace"`
	GST          string `json:"gst" example:"29ABCDE1234F2Z5"`
	TierID       string `json:"tier_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// UpdateInstitutionRequest carries a partial update; only non-nil fields are
// copied onto the stored row.
type UpdateInstitutionRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	GST          *string `json:"gst"`
}

type CreateBranchRequest struct {
	TenantID     string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name         string `json:"name" binding:"required" example:"North Campus"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	GST          string `json:"gst"`
}

type UpdateBranchRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	GST          *string `json:"gst"`
}

type CreateUserRequest struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type CreateStudentRequest struct {
	BranchID   string     `json:"branch_id"`
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email" binding:"omitempty,email"`
	Phone      string     `json:"phone"`
	Status     string     `json:"status"`
	EnrolledAt *time.Time `json:"enrolled_at"`
}

type UpdateStudentRequest struct {
	BranchID *string `json:"branch_id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
}

type CreateStaffRequest struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Subject  string `json:"subject"`
}

type UpdateStaffRequest struct {
	BranchID *string `json:"branch_id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Subject  *string `json:"subject"`
	IsActive *bool   `json:"is_active"`
}

type CreateCourseRequest struct {
	Name           string  `json:"name" binding:"required"`
	Code           string  `json:"code"`
	Fee            float64 `json:"fee"`
	DurationMonths int     `json:"duration_months"`
}

type UpdateCourseRequest struct {
	Name           *string  `json:"name"`
	Code           *string  `json:"code"`
	Fee            *float64 `json:"fee"`
	DurationMonths *int     `json:"duration_months"`
	Status         *string  `json:"status"`
}

type CreateEnrollmentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}

type UpdateEnrollmentRequest struct {
	Status *string `json:"status"`
}

type CreateTierRequest struct {
	Name            string  `json:"name" binding:"required" example:"Gold"`
	StudentCountMin int     `json:"student_count_min" example:"50"`
	StudentCountMax int     `json:"student_count_max" example:"200"`
	PricePerStudent float64 `json:"price_per_student" example:"120"`
	BillingCycle    string  `json:"billing_cycle" binding:"required" example:"monthly"`
}

type UpdateTierRequest struct {
	Name            *string  `json:"name"`
	StudentCountMin *int     `json:"student_count_min"`
	StudentCountMax *int     `json:"student_count_max"`
	PricePerStudent *float64 `json:"price_per_student"`
	BillingCycle    *string  `json:"billing_cycle"`
}

type UpdateBillingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}
