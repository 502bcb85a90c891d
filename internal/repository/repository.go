package repository

import (
	"context"
	"time"

	"github.com/acadify/acadify-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name BranchRepository --output ../mocks
type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	GetByID(ctx context.Context, id string) (*domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Branch, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

//go:generate mockery --name StudentRepository --output ../mocks
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.StudentFilter) ([]domain.Student, error)
	CountActive(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name StaffRepository --output ../mocks
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Staff, error)
}

//go:generate mockery --name CourseRepository --output ../mocks
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Course, error)
}

//go:generate mockery --name EnrollmentRepository --output ../mocks
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	Update(ctx context.Context, enrollment *domain.Enrollment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, tenantID string) ([]domain.Enrollment, error)
}

//go:generate mockery --name SubscriptionRepository --output ../mocks
type SubscriptionRepository interface {
	CreateTier(ctx context.Context, tier *domain.SubscriptionTier) (*domain.SubscriptionTier, error)
	GetTierByID(ctx context.Context, id string) (*domain.SubscriptionTier, error)
	UpdateTier(ctx context.Context, tier *domain.SubscriptionTier) error
	DeleteTier(ctx context.Context, id string) error
	ListTiers(ctx context.Context) ([]domain.SubscriptionTier, error)
	Subscribe(ctx context.Context, sub *domain.TenantSubscription) (*domain.TenantSubscription, error)
	ActiveSubscription(ctx context.Context, tenantID string) (*domain.TenantSubscription, error)
	ListActiveSubscriptions(ctx context.Context) ([]domain.TenantSubscription, error)
}

//go:generate mockery --name BillingRepository --output ../mocks
type BillingRepository interface {
	Create(ctx context.Context, billing *domain.InstitutionBilling) (*domain.InstitutionBilling, error)
	GetByID(ctx context.Context, id string) (*domain.InstitutionBilling, error)
	Update(ctx context.Context, billing *domain.InstitutionBilling) error
	List(ctx context.Context, filter domain.BillingFilter) ([]domain.InstitutionBilling, error)
	ExistsForMonth(ctx context.Context, tenantID, monthYear string) (bool, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

//go:generate mockery --name AnalyticsRepository --output ../mocks
type AnalyticsRepository interface {
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	TenantStats(ctx context.Context, tenantID string) (*domain.TenantStats, error)
	InstitutionRollups(ctx context.Context) ([]domain.InstitutionRollup, error)
	TierRollups(ctx context.Context) ([]domain.TierRollup, error)
}

//go:generate mockery --name StudentSearchRepository --output ../mocks
type StudentSearchRepository interface {
	Index(ctx context.Context, student *domain.Student) error
	Remove(ctx context.Context, tenantID, studentID string) error
	Search(ctx context.Context, filter *domain.StudentFilter) ([]domain.Student, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Branch() BranchRepository
	User() UserRepository
	Student() StudentRepository
	Staff() StaffRepository
	Course() CourseRepository
	Enrollment() EnrollmentRepository
	Subscription() SubscriptionRepository
	Billing() BillingRepository
	Analytics() AnalyticsRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	StudentSearch() StudentSearchRepository
}
