package domain

import (
	"time"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentInactive  StudentStatus = "INACTIVE"
	StudentGraduated StudentStatus = "GRADUATED"
	StudentDropped   StudentStatus = "DROPPED"
)

type Student struct {
	ID         string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID   string        `gorm:"type:uuid;index" json:"branch_id"`
	Name       string        `gorm:"type:text;not null" json:"name"`
	Email      string        `gorm:"type:text" json:"email"`
	Phone      string        `gorm:"type:text" json:"phone"`
	Status     StudentStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	EnrolledAt time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"enrolled_at"`
	CreatedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant     *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	Branch     *Branch       `gorm:"foreignKey:BranchID" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

type StudentFilter struct {
	TenantID  string    `json:"tenant_id"`
	BranchID  string    `json:"branch_id"`
	Status    string    `json:"status"`
	Query     string    `json:"query"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
}
