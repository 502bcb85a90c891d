package dto

import (
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/pkg/utils"
)

// ToTenant converts a CreateInstitutionRequest to a Tenant domain model
func (r *CreateInstitutionRequest) ToTenant() *domain.Tenant {
	return &domain.Tenant{
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
		Address:      r.Address,
		GST:          r.GST,
	}
}

// Apply copies the non-nil fields of an UpdateInstitutionRequest onto a tenant
func (r *UpdateInstitutionRequest) Apply(tenant *domain.Tenant) {
	if r.Name != nil {
		tenant.Name = *r.Name
	}
	if r.ContactEmail != nil {
		tenant.ContactEmail = *r.ContactEmail
	}
	if r.Phone != nil {
		tenant.Phone = *r.Phone
	}
	if r.Address != nil {
		tenant.Address = *r.Address
	}
	if r.GST != nil {
		tenant.GST = *r.GST
	}
}

func (r *CreateBranchRequest) ToBranch() *domain.Branch {
	return &domain.Branch{
		TenantID:     r.TenantID,
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
		Address:      r.Address,
		GST:          r.GST,
	}
}

func (r *UpdateBranchRequest) Apply(branch *domain.Branch) {
	if r.Name != nil {
		branch.Name = *r.Name
	}
	if r.ContactEmail != nil {
		branch.ContactEmail = *r.ContactEmail
	}
	if r.Phone != nil {
		branch.Phone = *r.Phone
	}
	if r.Address != nil {
		branch.Address = *r.Address
	}
	if r.GST != nil {
		branch.GST = *r.GST
	}
}

func (r *UpdateStudentRequest) Apply(student *domain.Student) {
	if r.BranchID != nil {
		student.BranchID = *r.BranchID
	}
	if r.Name != nil {
		student.Name = *r.Name
	}
	if r.Email != nil {
		student.Email = *r.Email
	}
	if r.Phone != nil {
		student.Phone = *r.Phone
	}
	if r.Status != nil {
		student.Status = domain.StudentStatus(*r.Status)
	}
}

func (r *UpdateStaffRequest) Apply(staff *domain.Staff) {
	if r.BranchID != nil {
		staff.BranchID = *r.BranchID
	}
	if r.Name != nil {
		staff.Name = *r.Name
	}
	if r.Email != nil {
		staff.Email = *r.Email
	}
	if r.Subject != nil {
		staff.Subject = *r.Subject
	}
	if r.IsActive != nil {
		staff.IsActive = *r.IsActive
	}
}

func (r *UpdateCourseRequest) Apply(course *domain.Course) {
	if r.Name != nil {
		course.Name = *r.Name
	}
	if r.Code != nil {
		course.Code = *r.Code
	}
	if r.Fee != nil {
		course.Fee = *r.Fee
	}
	if r.DurationMonths != nil {
		course.DurationMonths = *r.DurationMonths
	}
	if r.Status != nil {
		course.Status = domain.CourseStatus(*r.Status)
	}
}

func (r *CreateTierRequest) ToTier() *domain.SubscriptionTier {
	return &domain.SubscriptionTier{
		Name:            r.Name,
		StudentCountMin: r.StudentCountMin,
		StudentCountMax: r.StudentCountMax,
		PricePerStudent: r.PricePerStudent,
		BillingCycle:    domain.BillingCycle(r.BillingCycle),
	}
}

func (r *UpdateTierRequest) Apply(tier *domain.SubscriptionTier) {
	if r.Name != nil {
		tier.Name = *r.Name
	}
	if r.StudentCountMin != nil {
		tier.StudentCountMin = *r.StudentCountMin
	}
	if r.StudentCountMax != nil {
		tier.StudentCountMax = *r.StudentCountMax
	}
	if r.PricePerStudent != nil {
		tier.PricePerStudent = *r.PricePerStudent
	}
	if r.BillingCycle != nil {
		tier.BillingCycle = domain.BillingCycle(*r.BillingCycle)
	}
}

// FromTier converts a SubscriptionTier domain model to its response shape
func FromTier(tier *domain.SubscriptionTier) TierResponse {
	return TierResponse{
		ID:              tier.ID,
		Name:            tier.Name,
		StudentCountMin: tier.StudentCountMin,
		StudentCountMax: tier.StudentCountMax,
		PricePerStudent: tier.PricePerStudent,
		BillingCycle:    string(tier.BillingCycle),
		CreatedAt:       tier.CreatedAt,
		UpdatedAt:       tier.UpdatedAt,
	}
}

// FromPlatformStats reshapes raw platform aggregates into the chart-ready
// dashboard payload: month labels from the static lookup, status slices from
// the static palette.
func FromPlatformStats(stats *domain.PlatformStats) *PlatformDashboardResponse {
	resp := &PlatformDashboardResponse{
		TotalInstitutions: stats.TotalInstitutions,
		TotalBranches:     stats.TotalBranches,
		TotalStudents:     stats.TotalStudents,
		TotalStaff:        stats.TotalStaff,
		TotalRevenue:      stats.TotalRevenue,
		OverdueCount:      stats.OverdueCount,
		MonthlyRevenue:    make([]MonthPoint, 0, len(stats.MonthlyRevenue)),
		BillingByStatus:   make([]StatusSlice, 0, len(stats.BillingByStatus)),
	}

	for _, point := range stats.MonthlyRevenue {
		resp.MonthlyRevenue = append(resp.MonthlyRevenue, MonthPoint{
			Month:     utils.MonthLabel(point.MonthYear),
			MonthYear: point.MonthYear,
			Revenue:   point.Revenue,
		})
	}
	for _, slice := range stats.BillingByStatus {
		resp.BillingByStatus = append(resp.BillingByStatus, StatusSlice{
			Status: string(slice.Status),
			Count:  slice.Count,
			Color:  domain.StatusColors[slice.Status],
		})
	}

	return resp
}

func FromTenantStats(stats *domain.TenantStats) *TenantDashboardResponse {
	return &TenantDashboardResponse{
		TotalBranches:    stats.TotalBranches,
		TotalStudents:    stats.TotalStudents,
		TotalStaff:       stats.TotalStaff,
		TotalCourses:     stats.TotalCourses,
		StudentsByStatus: stats.StudentsByStatus,
		PendingAmount:    stats.PendingAmount,
		OverdueAmount:    stats.OverdueAmount,
	}
}

// FromBilling builds the stream event for a billing row.
func FromBilling(billing *domain.InstitutionBilling) *BillingEvent {
	return &BillingEvent{
		BillingID:   billing.ID,
		TenantID:    billing.TenantID,
		MonthYear:   billing.MonthYear,
		TotalAmount: billing.TotalAmount,
		Status:      string(billing.Status),
		OccurredAt:  billing.UpdatedAt,
	}
}
