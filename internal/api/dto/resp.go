package dto

import (
	"time"

	"github.com/acadify/acadify-api/internal/domain"
)

// UserResponse is the sanitized user shape. The password hash never leaves
// the service layer.
type UserResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID  *string   `json:"tenant_id"`
	Name      string    `json:"name" example:"Jordan Blake"`
	Email     string    `json:"email" example:"jordan@springfield.edu"`
	Role      string    `json:"role" example:"admin"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type InstitutionResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	GST          string    `json:"gst"`
	TierID       string    `json:"tier_id,omitempty"`
	TierName     string    `json:"tier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TierResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	StudentCountMin int       `json:"student_count_min"`
	StudentCountMax int       `json:"student_count_max"`
	PricePerStudent float64   `json:"price_per_student"`
	BillingCycle    string    `json:"billing_cycle"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MonthPoint is a chart-ready revenue point: three-letter month label plus
// the underlying YYYY-MM code.
type MonthPoint struct {
	Month     string  `json:"month" example:"Mar"`
	MonthYear string  `json:"month_year" example:"2026-03"`
	Revenue   float64 `json:"revenue" example:"48200"`
}

// StatusSlice is a chart-ready status breakdown slice with its palette color.
type StatusSlice struct {
	Status string `json:"status" example:"PAID"`
	Count  int64  `json:"count" example:"12"`
	Color  string `json:"color" example:"#22c55e"`
}

type PlatformDashboardResponse struct {
	TotalInstitutions int64         `json:"total_institutions"`
	TotalBranches     int64         `json:"total_branches"`
	TotalStudents     int64         `json:"total_students"`
	TotalStaff        int64         `json:"total_staff"`
	TotalRevenue      float64       `json:"total_revenue"`
	OverdueCount      int64         `json:"overdue_count"`
	MonthlyRevenue    []MonthPoint  `json:"monthly_revenue"`
	BillingByStatus   []StatusSlice `json:"billing_by_status"`
}

type TenantDashboardResponse struct {
	TotalBranches    int64            `json:"total_branches"`
	TotalStudents    int64            `json:"total_students"`
	TotalStaff       int64            `json:"total_staff"`
	TotalCourses     int64            `json:"total_courses"`
	StudentsByStatus map[string]int64 `json:"students_by_status"`
	PendingAmount    float64          `json:"pending_amount"`
	OverdueAmount    float64          `json:"overdue_amount"`
}

// BillingEvent is published to the super-admin billing stream whenever a
// billing row is created or changes status.
type BillingEvent struct {
	BillingID   string    `json:"billing_id"`
	TenantID    string    `json:"tenant_id"`
	MonthYear   string    `json:"month_year"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// SanitizeUser converts a domain user to its response shape with the
// password stripped.
func SanitizeUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
