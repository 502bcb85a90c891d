package domain

import (
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentQuit      EnrollmentStatus = "QUIT"
)

type Enrollment struct {
	ID         string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StudentID  string           `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID   string           `gorm:"type:uuid;not null;index" json:"course_id"`
	Status     EnrollmentStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	EnrolledAt time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"enrolled_at"`
	CreatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Student    *Student         `gorm:"foreignKey:StudentID" json:"-"`
	Course     *Course          `gorm:"foreignKey:CourseID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
