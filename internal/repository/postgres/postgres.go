package postgres

import (
	"gorm.io/gorm"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	tenantRepo       repository.TenantRepository
	branchRepo       repository.BranchRepository
	userRepo         repository.UserRepository
	studentRepo      repository.StudentRepository
	staffRepo        repository.StaffRepository
	courseRepo       repository.CourseRepository
	enrollmentRepo   repository.EnrollmentRepository
	subscriptionRepo repository.SubscriptionRepository
	billingRepo      repository.BillingRepository
	analyticsRepo    repository.AnalyticsRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:         dbConnections.Writer,
		readerDB:         dbConnections.Reader,
		tenantRepo:       NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		branchRepo:       NewBranchRepository(dbConnections.Writer, dbConnections.Reader),
		userRepo:         NewUserRepository(dbConnections.Writer, dbConnections.Reader),
		studentRepo:      NewStudentRepository(dbConnections.Writer, dbConnections.Reader),
		staffRepo:        NewStaffRepository(dbConnections.Writer, dbConnections.Reader),
		courseRepo:       NewCourseRepository(dbConnections.Writer, dbConnections.Reader),
		enrollmentRepo:   NewEnrollmentRepository(dbConnections.Writer, dbConnections.Reader),
		subscriptionRepo: NewSubscriptionRepository(dbConnections.Writer, dbConnections.Reader),
		billingRepo:      NewBillingRepository(dbConnections.Writer, dbConnections.Reader),
		analyticsRepo:    NewAnalyticsRepository(dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository             { return r.tenantRepo }
func (r *postgresRepository) Branch() repository.BranchRepository             { return r.branchRepo }
func (r *postgresRepository) User() repository.UserRepository                 { return r.userRepo }
func (r *postgresRepository) Student() repository.StudentRepository           { return r.studentRepo }
func (r *postgresRepository) Staff() repository.StaffRepository               { return r.staffRepo }
func (r *postgresRepository) Course() repository.CourseRepository             { return r.courseRepo }
func (r *postgresRepository) Enrollment() repository.EnrollmentRepository     { return r.enrollmentRepo }
func (r *postgresRepository) Subscription() repository.SubscriptionRepository { return r.subscriptionRepo }
func (r *postgresRepository) Billing() repository.BillingRepository           { return r.billingRepo }
func (r *postgresRepository) Analytics() repository.AnalyticsRepository      { return r.analyticsRepo }
