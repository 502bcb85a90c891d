package domain

import (
	"time"
)

type BillingStatus string

const (
	BillingPaid    BillingStatus = "PAID"
	BillingPending BillingStatus = "PENDING"
	BillingOverdue BillingStatus = "OVERDUE"
)

// InstitutionBilling is a monthly billing record for a tenant (optionally a
// single branch). MonthYear uses the YYYY-MM month code.
type InstitutionBilling struct {
	ID          string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID    *string       `gorm:"type:uuid;index" json:"branch_id"`
	MonthYear   string        `gorm:"type:text;not null;index" json:"month_year"`
	TotalAmount float64       `gorm:"type:numeric;not null;default:0" json:"total_amount"`
	Status      BillingStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	DueDate     time.Time     `gorm:"type:timestamp with time zone" json:"due_date"`
	PaidAt      *time.Time    `gorm:"type:timestamp with time zone" json:"paid_at"`
	CreatedAt   time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
}

func (InstitutionBilling) TableName() string {
	return "institution_billing"
}

type BillingFilter struct {
	TenantID  string `json:"tenant_id"`
	BranchID  string `json:"branch_id"`
	Status    string `json:"status"`
	MonthYear string `json:"month_year"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

// StatusColors is the static palette used by chart payloads.
var StatusColors = map[BillingStatus]string{
	BillingPaid:    "#22c55e",
	BillingPending: "#f59e0b",
	BillingOverdue: "#ef4444",
}
