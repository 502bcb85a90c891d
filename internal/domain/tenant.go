package domain

import (
	"time"
)

// Tenant is a customer institution subscribing to the platform.
type Tenant struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	ContactEmail string    `gorm:"type:text" json:"contact_email"`
	Phone        string    `gorm:"type:text" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	GST          string    `gorm:"type:text;column:gst" json:"gst"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
