package domain

import (
	"time"
)

// Branch is a physical or operational sub-unit of a tenant.
type Branch struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	ContactEmail string    `gorm:"type:text" json:"contact_email"`
	Phone        string    `gorm:"type:text" json:"phone"`
	Address      string    `gorm:"type:text" json:"address"`
	GST          string    `gorm:"type:text;column:gst" json:"gst"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Branch) TableName() string {
	return "branches"
}
