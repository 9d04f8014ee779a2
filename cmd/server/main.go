package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursehub/internal/ai"
	"coursehub/internal/authz"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/handler"
	"coursehub/internal/mailer"
	"coursehub/internal/media"
	"coursehub/internal/metrics"
	"coursehub/internal/middleware"
	"coursehub/internal/payment"
	"coursehub/internal/queue"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
	"coursehub/internal/storage"
	"coursehub/internal/validator"
	"coursehub/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Coursehub API
// @version         1.0
// @description     REST API for an online course marketplace built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()
	transactor := database.NewTransactor(mongoDB.Client, mongoDB.TransactionsEnabled(context.Background(), cfg.MongoTransactions))

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()
	courseCache := cache.WithRecorder(redisCache, appMetrics)
	invalidator := cache.NewInvalidator(redisCache)

	// S3 Storage and media processing
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, cfg.S3PublicBaseURL)
	resolver := media.NewResolver(s3Client, media.ImageOptions{})

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	repos := service.Repositories{
		Users:       repository.NewUserRepository(mongoDB.Database),
		Categories:  repository.NewCategoryRepository(mongoDB.Database),
		Courses:     repository.NewCourseRepository(mongoDB.Database),
		Sections:    repository.NewSectionRepository(mongoDB.Database),
		SubSections: repository.NewSubSectionRepository(mongoDB.Database),
		Reviews:     repository.NewReviewRepository(mongoDB.Database),
		Progress:    repository.NewProgressRepository(mongoDB.Database),
		Payments:    repository.NewPaymentRepository(mongoDB.Database),
	}

	// Authorization
	authorizer := authz.NewLocalAuthorizer(repos.Courses)

	// Mail queue and processor
	mailQueue := queue.NewMemoryQueue(cfg.MailQueueSize)
	var sender mailer.Sender = mailer.LogSender{}
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("SMTP_HOST not set, mail is logged instead of sent")
	}
	mailProcessor := queue.NewProcessor(mailQueue, sender, appMetrics, cfg.MailWorkers)
	notifier := queue.NewNotifier(mailQueue)

	// Payment gateway
	var gateway payment.Gateway = payment.DisabledGateway{}
	if cfg.MidtransServerKey != "" {
		gateway = payment.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	} else {
		log.Println("MIDTRANS_SERVER_KEY not set, paid checkout disabled")
	}

	// AI text generation
	var generator ai.Generator = ai.DisabledGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Gemini client unavailable, AI assistance disabled: %v", err)
		} else {
			generator = gemini
		}
	}

	// Service layer
	content := service.ContentServiceConfig{
		Repos:       repos,
		Invalidator: invalidator,
		Media:       resolver,
		Authz:       authorizer,
		Transactor:  transactor,
	}
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      repos.Users,
		JWTManager:    jwtManager,
		ResetTokens:   auth.NewResetTokenGenerator(),
		Notifier:      notifier,
		FrontendURL:   cfg.FrontendURL,
		ResetTokenTTL: cfg.ResetTokenExpiry,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		Repos:       repos,
		Cache:       courseCache,
		Invalidator: invalidator,
		Media:       resolver,
	})
	categoryService := service.NewCategoryService(repos)
	courseService := service.NewCourseService(service.CourseServiceConfig{
		Repos:       repos,
		Cache:       courseCache,
		Invalidator: invalidator,
		Media:       resolver,
		Authz:       authorizer,
		Transactor:  transactor,
	})
	sectionService := service.NewSectionService(content)
	subSectionService := service.NewSubSectionService(content)
	enrollmentService := service.NewEnrollmentService(service.EnrollmentServiceConfig{
		Repos:       repos,
		Invalidator: invalidator,
		Notifier:    notifier,
		Recorder:    appMetrics,
	})
	progressService := service.NewProgressService(repos)
	reviewService := service.NewReviewService(repos, invalidator, transactor)
	paymentService := service.NewPaymentService(service.PaymentServiceConfig{
		Repos:       repos,
		Gateway:     gateway,
		Enrollments: enrollmentService,
		Notifier:    notifier,
		ServerKey:   cfg.MidtransServerKey,
	})
	aiService := service.NewAIService(generator)
	adminService := service.NewAdminService(service.AdminServiceConfig{
		Repos:       repos,
		Invalidator: invalidator,
		Media:       resolver,
		Transactor:  transactor,
	})

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService),
		CategoryHandler:   handler.NewCategoryHandler(categoryService),
		CourseHandler:     handler.NewCourseHandler(courseService),
		SectionHandler:    handler.NewSectionHandler(sectionService, subSectionService),
		EnrollmentHandler: handler.NewEnrollmentHandler(enrollmentService, progressService),
		ReviewHandler:     handler.NewReviewHandler(reviewService),
		PaymentHandler:    handler.NewPaymentHandler(paymentService),
		AIHandler:         handler.NewAIHandler(aiService),
		AdminHandler:      handler.NewAdminHandler(adminService, courseService),
		TokenManager:      jwtManager,
		Metrics:           appMetrics,
		Gatherer:          registry,
		AuthLimiter:       middleware.NewLimiter(cfg.RateLimitPerSecond),
		CORSOrigins:       cfg.CORSOrigins,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start mail processor
	mailProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop mail processor (waits for workers)
	log.Println("Stopping mail processor...")
	mailProcessor.Stop()

	log.Println("Server shutdown complete")
}
