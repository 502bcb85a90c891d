package domain

import (
	"time"
)

type BillingCycle string

const (
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

// SubscriptionTier is a pricing plan bucketing tenants by student-count range
// and per-student price.
type SubscriptionTier struct {
	ID              string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name            string       `gorm:"type:text;not null" json:"name"`
	StudentCountMin int          `gorm:"not null;default:0" json:"student_count_min"`
	StudentCountMax int          `gorm:"not null;default:0" json:"student_count_max"`
	PricePerStudent float64      `gorm:"type:numeric;not null;default:0" json:"price_per_student"`
	BillingCycle    BillingCycle `gorm:"type:text;not null;default:'monthly'" json:"billing_cycle"`
	CreatedAt       time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SubscriptionTier) TableName() string {
	return "subscription_tiers"
}

// TenantSubscription joins a tenant to its subscription tier. A tier's
// active_institutions aggregate is the distinct count of tenants with an
// active row here.
type TenantSubscription struct {
	ID        string            `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string            `gorm:"type:uuid;not null;index" json:"tenant_id"`
	TierID    string            `gorm:"type:uuid;not null;index" json:"tier_id"`
	Active    bool              `gorm:"not null;default:true" json:"active"`
	StartedAt time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"started_at"`
	CreatedAt time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant           `gorm:"foreignKey:TenantID" json:"-"`
	Tier      *SubscriptionTier `gorm:"foreignKey:TierID" json:"-"`
}

func (TenantSubscription) TableName() string {
	return "tenant_subscriptions"
}
