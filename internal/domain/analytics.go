package domain

// MonthRevenue is one point of a monthly revenue series, keyed by the
// YYYY-MM month code.
type MonthRevenue struct {
	MonthYear string  `json:"month_year"`
	Revenue   float64 `json:"revenue"`
}

// StatusCount is one slice of a status breakdown chart.
type StatusCount struct {
	Status BillingStatus `json:"status"`
	Count  int64         `json:"count"`
}

// PlatformStats feeds the super-admin dashboard.
type PlatformStats struct {
	TotalInstitutions int64          `json:"total_institutions"`
	TotalBranches     int64          `json:"total_branches"`
	TotalStudents     int64          `json:"total_students"`
	TotalStaff        int64          `json:"total_staff"`
	TotalRevenue      float64        `json:"total_revenue"`
	OverdueCount      int64          `json:"overdue_count"`
	MonthlyRevenue    []MonthRevenue `json:"monthly_revenue"`
	BillingByStatus   []StatusCount  `json:"billing_by_status"`
}

// TenantStats feeds the institution-level dashboard.
type TenantStats struct {
	TotalBranches    int64            `json:"total_branches"`
	TotalStudents    int64            `json:"total_students"`
	TotalStaff       int64            `json:"total_staff"`
	TotalCourses     int64            `json:"total_courses"`
	StudentsByStatus map[string]int64 `json:"students_by_status"`
	PendingAmount    float64          `json:"pending_amount"`
	OverdueAmount    float64          `json:"overdue_amount"`
}

// InstitutionRollup is the per-institution row of the institutions
// analytics endpoint.
type InstitutionRollup struct {
	TenantID      string  `json:"tenant_id"`
	TenantName    string  `json:"tenant_name"`
	BranchCount   int64   `json:"branch_count"`
	StudentCount  int64   `json:"student_count"`
	BilledAmount  float64 `json:"billed_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
}

// TierRollup is the per-tier row of the subscriptions analytics endpoint.
type TierRollup struct {
	TierID             string  `json:"tier_id"`
	TierName           string  `json:"tier_name"`
	ActiveInstitutions int64   `json:"active_institutions"`
	TotalRevenue       float64 `json:"total_revenue"`
}
