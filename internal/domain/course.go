package domain

import (
	"time"
)

type CourseStatus string

const (
	CourseActive   CourseStatus = "ACTIVE"
	CourseInactive CourseStatus = "INACTIVE"
)

// Course is a product offered by a tenant that students enroll into.
type Course struct {
	ID             string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID       string       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name           string       `gorm:"type:text;not null" json:"name"`
	Code           string       `gorm:"type:text" json:"code"`
	Fee            float64      `gorm:"type:numeric;not null;default:0" json:"fee"`
	DurationMonths int          `gorm:"not null;default:0" json:"duration_months"`
	Status         CourseStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	CreatedAt      time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant         *Tenant      `gorm:"foreignKey:TenantID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
