// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "coursehub/swagger" // Import generated swagger docs

	"coursehub/internal/handler"
	"coursehub/internal/metrics"
	"coursehub/internal/middleware"
	"coursehub/internal/models"
	"coursehub/pkg/auth"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	CategoryHandler   *handler.CategoryHandler
	CourseHandler     *handler.CourseHandler
	SectionHandler    *handler.SectionHandler
	EnrollmentHandler *handler.EnrollmentHandler
	ReviewHandler     *handler.ReviewHandler
	PaymentHandler    *handler.PaymentHandler
	AIHandler         *handler.AIHandler
	AdminHandler      *handler.AdminHandler

	TokenManager auth.TokenManager
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	AuthLimiter  *limiter.Limiter
	CORSOrigins  []string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	authn := middleware.Auth(cfg.TokenManager)
	students := middleware.RequireRoles(models.RoleStudent)
	instructors := middleware.RequireRoles(models.RoleInstructor)
	admins := middleware.RequireRoles(models.RoleAdmin)

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.AuthLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.RateLimit(cfg.AuthLimiter), h}
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", limited(cfg.AuthHandler.Signup)...)
			authRoutes.POST("/login", limited(cfg.AuthHandler.Login)...)
			authRoutes.POST("/forgot-password", limited(cfg.AuthHandler.ForgotPassword)...)
			authRoutes.POST("/update-password/:token", cfg.AuthHandler.ResetPassword)
		}

		// User routes (protected)
		users := v1.Group("/user")
		users.Use(authn)
		{
			users.GET("/me", cfg.UserHandler.GetProfile)
			users.PUT("/update", cfg.UserHandler.UpdateProfile)
			users.PUT("/display-picture", cfg.UserHandler.UpdateDisplayPicture)
			users.PUT("/change-password", cfg.AuthHandler.ChangePassword)
			users.GET("/enrolled-courses", cfg.UserHandler.GetEnrolledCourses)
		}

		categories := v1.Group("/category")
		{
			categories.GET("", cfg.CategoryHandler.ListCategories)
			categories.POST("", authn, admins, cfg.CategoryHandler.CreateCategory)
		}

		courses := v1.Group("/course")
		{
			// Public catalog
			courses.GET("", cfg.CourseHandler.ListCourses)
			courses.GET("/category/:categoryId", cfg.CourseHandler.CoursesByCategory)
			courses.GET("/:id", middleware.OptionalAuth(cfg.TokenManager), cfg.CourseHandler.GetCourse)
			courses.GET("/:id/content", authn, cfg.CourseHandler.GetCourseContent)

			// Instructor authoring
			courses.POST("", authn, instructors, cfg.CourseHandler.CreateCourse)
			courses.PUT("/:id", authn, instructors, cfg.CourseHandler.EditCourse)
			courses.DELETE("/:id", authn, instructors, cfg.CourseHandler.DeleteCourse)
			courses.GET("/getInstructorCourses", authn, instructors, cfg.CourseHandler.InstructorCourses)
			courses.GET("/instructor/stats", authn, instructors, cfg.CourseHandler.InstructorStats)
			courses.POST("/ai/description", authn, instructors, cfg.AIHandler.GenerateDescription)

			// Student learning
			courses.POST("/buy", authn, students, cfg.EnrollmentHandler.Enroll)
			courses.POST("/progress", authn, students, cfg.EnrollmentHandler.MarkLectureComplete)
		}

		sections := v1.Group("/section")
		sections.Use(authn, instructors)
		{
			sections.POST("", cfg.SectionHandler.CreateSection)
			sections.PUT("/:id", cfg.SectionHandler.UpdateSection)
			sections.DELETE("/:id", cfg.SectionHandler.DeleteSection)
		}

		subSections := v1.Group("/sub-section")
		subSections.Use(authn, instructors)
		{
			subSections.POST("", cfg.SectionHandler.CreateSubSection)
			subSections.PUT("/:id", cfg.SectionHandler.UpdateSubSection)
			subSections.DELETE("/:id", cfg.SectionHandler.DeleteSubSection)
		}

		reviews := v1.Group("/rating-review")
		{
			reviews.GET("", cfg.ReviewHandler.ListReviews)
			reviews.POST("/add", authn, students, cfg.ReviewHandler.CreateReview)
			reviews.POST("/average/:id", authn, cfg.ReviewHandler.AverageRating)
		}

		payments := v1.Group("/payment")
		{
			payments.POST("/capture", authn, students, cfg.PaymentHandler.Capture)
			// Gateway callback, authenticated by its signature
			payments.POST("/notification", cfg.PaymentHandler.Notification)
		}

		admin := v1.Group("/admin")
		admin.Use(authn, admins)
		{
			admin.GET("/stats", cfg.AdminHandler.Stats)
			admin.GET("/users", cfg.AdminHandler.ListUsers)
			admin.GET("/courses", cfg.AdminHandler.ListCourses)
			admin.GET("/instructor/:id/stats", cfg.AdminHandler.InstructorStats)
			admin.PUT("/update-role", cfg.AdminHandler.UpdateRole)
			admin.DELETE("/user/:id", cfg.AdminHandler.DeleteUser)
			admin.DELETE("/course/:id", cfg.AdminHandler.DeleteCourse)
		}
	}

	return r
}
