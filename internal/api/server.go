package api

import (
	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/middleware"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/internal/service/pubsub"
	"github.com/acadify/acadify-api/pkg/logger"
)

type Server struct {
	auth         *AuthHandler
	institution  *InstitutionHandler
	subscription *SubscriptionHandler
	branch       *BranchHandler
	user         *UserHandler
	student      *StudentHandler
	staff        *StaffHandler
	course       *CourseHandler
	enrollment   *EnrollmentHandler
	billing      *BillingHandler
	dashboard    *DashboardHandler
	websocket    *WebSocketHandler
	authMW       *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

type Services struct {
	Auth         *service.AuthService
	Institution  *service.InstitutionService
	Subscription *service.SubscriptionService
	Branch       *service.BranchService
	User         *service.UserService
	Student      *service.StudentService
	Staff        *service.StaffService
	Course       *service.CourseService
	Enrollment   *service.EnrollmentService
	Billing      *service.BillingService
	Dashboard    *service.DashboardService
}

func NewServer(
	services Services,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	base := NewBaseHandler(logger)
	return &Server{
		auth:         NewAuthHandler(base, services.Auth),
		institution:  NewInstitutionHandler(base, services.Institution),
		subscription: NewSubscriptionHandler(base, services.Subscription),
		branch:       NewBranchHandler(base, services.Branch),
		user:         NewUserHandler(base, services.User),
		student:      NewStudentHandler(base, services.Student),
		staff:        NewStaffHandler(base, services.Staff),
		course:       NewCourseHandler(base, services.Course),
		enrollment:   NewEnrollmentHandler(base, services.Enrollment),
		billing:      NewBillingHandler(base, services.Billing),
		dashboard:    NewDashboardHandler(base, services.Dashboard),
		websocket:    NewWebSocketHandler(base, logger, pubsub),
		authMW:       authMW,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	api.POST("/auth/login", s.auth.Login)

	authed := api.Group("", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
	{
		branches := authed.Group("/branches", s.authMW.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))
		{
			branches.POST("", s.branch.CreateBranch)
			branches.GET("", s.branch.ListBranches)
			branches.GET("/:id", s.branch.GetBranch)
			branches.PUT("/:id", s.branch.UpdateBranch)
			branches.DELETE("/:id", s.branch.DeleteBranch)
		}

		users := authed.Group("/users", s.authMW.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))
		{
			users.POST("", s.user.CreateUser)
			users.GET("", s.user.ListUsers)
			users.GET("/:id", s.user.GetUser)
			users.PUT("/:id", s.user.UpdateUser)
			users.DELETE("/:id", s.user.DeleteUser)
		}

		students := authed.Group("/students")
		{
			students.GET("", s.student.ListStudents)
			students.GET("/export", s.student.ExportStudents)
			students.GET("/:id", s.student.GetStudent)

			write := students.Group("", s.authMW.RequireRole(domain.RoleAdmin))
			{
				write.POST("", s.student.CreateStudent)
				write.PUT("/:id", s.student.UpdateStudent)
				write.DELETE("/:id", s.student.DeleteStudent)
			}
		}

		staff := authed.Group("/staff")
		{
			staff.GET("", s.staff.ListStaff)
			staff.GET("/:id", s.staff.GetStaff)

			write := staff.Group("", s.authMW.RequireRole(domain.RoleAdmin))
			{
				write.POST("", s.staff.CreateStaff)
				write.PUT("/:id", s.staff.UpdateStaff)
				write.DELETE("/:id", s.staff.DeleteStaff)
			}
		}

		courses := authed.Group("/courses")
		{
			courses.GET("", s.course.ListCourses)
			courses.GET("/:id", s.course.GetCourse)

			write := courses.Group("", s.authMW.RequireRole(domain.RoleAdmin))
			{
				write.POST("", s.course.CreateCourse)
				write.PUT("/:id", s.course.UpdateCourse)
				write.DELETE("/:id", s.course.DeleteCourse)
			}
		}

		enrollments := authed.Group("/enrollments")
		{
			enrollments.GET("", s.enrollment.ListEnrollments)
			enrollments.GET("/:id", s.enrollment.GetEnrollment)

			write := enrollments.Group("", s.authMW.RequireRole(domain.RoleAdmin, domain.RoleTeacher))
			{
				write.POST("", s.enrollment.CreateEnrollment)
				write.PUT("/:id", s.enrollment.UpdateEnrollment)
				write.DELETE("/:id", s.enrollment.DeleteEnrollment)
			}
		}

		billing := authed.Group("/billing")
		{
			billing.GET("", s.billing.ListBilling)
			billing.GET("/:id", s.billing.GetBilling)
			billing.GET("/:id/invoice", s.billing.DownloadInvoice)
			billing.PUT("/:id/status", s.authMW.RequireRole(domain.RoleSuperAdmin), s.billing.UpdateBillingStatus)
			billing.POST("/:id/invoice/archive", s.authMW.RequireRole(domain.RoleSuperAdmin), s.billing.ArchiveInvoice)
		}

		authed.GET("/dashboard", s.dashboard.GetTenantDashboard)

		superAdmin := authed.Group("/super-admin", s.authMW.RequireRole(domain.RoleSuperAdmin))
		{
			superAdmin.GET("/dashboard", s.dashboard.GetPlatformDashboard)
			superAdmin.GET("/institutions/analytics", s.dashboard.GetInstitutionAnalytics)
			superAdmin.GET("/subscriptions/analytics", s.dashboard.GetSubscriptionAnalytics)
			superAdmin.GET("/billing/stream", s.websocket.HandleWebSocket)

			institutions := superAdmin.Group("/institutions")
			{
				institutions.POST("", s.institution.CreateInstitution)
				institutions.GET("", s.institution.ListInstitutions)
				institutions.GET("/:id", s.institution.GetInstitution)
				institutions.PUT("/:id", s.institution.UpdateInstitution)
				institutions.DELETE("/:id", s.institution.DeleteInstitution)
				institutions.POST("/:id/subscribe/:tier_id", s.subscription.SubscribeInstitution)
			}

			tiers := superAdmin.Group("/subscription-tiers")
			{
				tiers.POST("", s.subscription.CreateTier)
				tiers.GET("", s.subscription.ListTiers)
				tiers.GET("/:id", s.subscription.GetTier)
				tiers.PUT("/:id", s.subscription.UpdateTier)
				tiers.DELETE("/:id", s.subscription.DeleteTier)
			}
		}
	}
}

// StartWebSocketHub starts the hub that fans billing events out to stream
// clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
