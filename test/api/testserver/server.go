//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"coursehub/internal/ai"
	"coursehub/internal/authz"
	"coursehub/internal/cache"
	"coursehub/internal/database"
	"coursehub/internal/handler"
	"coursehub/internal/media"
	"coursehub/internal/metrics"
	"coursehub/internal/queue"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
	"coursehub/internal/storage"
	"coursehub/pkg/auth"
	"coursehub/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the access token lifetime used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestResetTokenExpiry is the password reset token lifetime used in tests.
	TestResetTokenExpiry = 15 * time.Minute
	// TestServerKey signs payment notifications in tests.
	TestServerKey = "test-midtrans-server-key"
	// TestFrontendURL prefixes password reset links.
	TestFrontendURL = "http://frontend.test"
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	Repos service.Repositories

	// Auth
	JWTManager *auth.JWTManager

	// Outbound fakes
	Mail    *MailSpy
	Gateway *FakeGateway

	mailQueue     *queue.MemoryQueue
	mailProcessor *queue.Processor
	metrics       *metrics.Metrics
	cancel        context.CancelFunc
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	if err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	appMetrics := metrics.New(prometheus.NewRegistry())

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)
	courseCache := cache.WithRecorder(redisCache, appMetrics)
	invalidator := cache.NewInvalidator(redisCache)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
		"",
	)
	resolver := media.NewResolver(s3Client, media.ImageOptions{MaxWidth: 320, MaxHeight: 180})

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

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

	// Standalone containers have no replica set, so transactions stay off
	transactor := database.NewTransactor(mongoDB.Client, false)
	authorizer := authz.NewLocalAuthorizer(repos.Courses)

	// Mail pipeline delivers into the spy
	mail := NewMailSpy()
	mailQueue := queue.NewMemoryQueue(100)
	notifier := queue.NewNotifier(mailQueue)
	gateway := &FakeGateway{}

	content := service.ContentServiceConfig{
		Repos:       repos,
		Invalidator: invalidator,
		Media:       resolver,
		Authz:       authorizer,
		Transactor:  transactor,
	}
	courseService := service.NewCourseService(service.CourseServiceConfig{
		Repos:       repos,
		Cache:       courseCache,
		Invalidator: invalidator,
		Media:       resolver,
		Authz:       authorizer,
		Transactor:  transactor,
	})
	enrollmentService := service.NewEnrollmentService(service.EnrollmentServiceConfig{
		Repos:       repos,
		Invalidator: invalidator,
		Notifier:    notifier,
		Recorder:    appMetrics,
	})

	r := router.Setup(&router.Config{
		AuthHandler: handler.NewAuthHandler(service.NewAuthService(service.AuthServiceConfig{
			UserRepo:      repos.Users,
			JWTManager:    jwtManager,
			ResetTokens:   auth.NewResetTokenGenerator(),
			Notifier:      notifier,
			FrontendURL:   TestFrontendURL,
			ResetTokenTTL: TestResetTokenExpiry,
		})),
		UserHandler: handler.NewUserHandler(service.NewUserService(service.UserServiceConfig{
			Repos:       repos,
			Cache:       courseCache,
			Invalidator: invalidator,
			Media:       resolver,
		})),
		CategoryHandler:   handler.NewCategoryHandler(service.NewCategoryService(repos)),
		CourseHandler:     handler.NewCourseHandler(courseService),
		SectionHandler:    handler.NewSectionHandler(service.NewSectionService(content), service.NewSubSectionService(content)),
		EnrollmentHandler: handler.NewEnrollmentHandler(enrollmentService, service.NewProgressService(repos)),
		ReviewHandler:     handler.NewReviewHandler(service.NewReviewService(repos, invalidator, transactor)),
		PaymentHandler: handler.NewPaymentHandler(service.NewPaymentService(service.PaymentServiceConfig{
			Repos:       repos,
			Gateway:     gateway,
			Enrollments: enrollmentService,
			Notifier:    notifier,
			ServerKey:   TestServerKey,
		})),
		AIHandler: handler.NewAIHandler(service.NewAIService(ai.DisabledGenerator{})),
		AdminHandler: handler.NewAdminHandler(service.NewAdminService(service.AdminServiceConfig{
			Repos:       repos,
			Invalidator: invalidator,
			Media:       resolver,
			Transactor:  transactor,
		}), courseService),
		TokenManager: jwtManager,
		Metrics:      appMetrics,
		// No auth limiter: tests log in far more often than clients may.
		AuthLimiter: nil,
		CORSOrigins: []string{"*"},
	})

	ts := &TestServer{
		Router:     r,
		MongoDB:    mongoDB,
		Redis:      redisContainer,
		MinIO:      minioContainer,
		Repos:      repos,
		JWTManager: jwtManager,
		Mail:       mail,
		Gateway:    gateway,
		mailQueue:  mailQueue,
		metrics:    appMetrics,
	}
	ts.startMail()
	return ts, nil
}

func (ts *TestServer) startMail() {
	ctx, cancel := context.WithCancel(context.Background())
	ts.cancel = cancel
	ts.mailProcessor = queue.NewProcessor(ts.mailQueue, ts.Mail, ts.metrics, 2)
	ts.mailProcessor.Start(ctx)
}

// RestartMail drains the mail pipeline and starts a fresh one, so messages
// from one test never reach the next.
func (ts *TestServer) RestartMail() {
	ts.cancel()
	ts.mailProcessor.Stop()
	ts.mailQueue.Reset()
	ts.Mail.Reset()
	ts.startMail()
}

// Cleanup stops the mail workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	ts.cancel()
	ts.mailProcessor.Stop()
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// Token issues an access token without going through login.
func (ts *TestServer) Token(userID, role string) string {
	token, err := ts.JWTManager.GenerateToken(userID, role)
	if err != nil {
		panic(err)
	}
	return token
}
