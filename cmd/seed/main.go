package main

import (
	"bytes"
	"context"
	"image/color"
	"log"
	"time"

	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/media"
	"coursehub/internal/models"
	"coursehub/internal/repository"
	"coursehub/internal/storage"
	"coursehub/pkg/auth"

	"github.com/disintegration/imaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedIDs are the documents created by this run, shared between steps.
type seedIDs struct {
	admin      primitive.ObjectID
	instructor primitive.ObjectID
	student    primitive.ObjectID
	categories []primitive.ObjectID
	course     primitive.ObjectID
	section    primitive.ObjectID
	lessons    []primitive.ObjectID
	review     primitive.ObjectID
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
		cfg.S3PublicBaseURL,
	)

	ctx := context.Background()
	db := mongoDB.Database

	clearCollections(ctx, db)

	ids := &seedIDs{
		admin:      primitive.NewObjectID(),
		instructor: primitive.NewObjectID(),
		student:    primitive.NewObjectID(),
		course:     primitive.NewObjectID(),
		section:    primitive.NewObjectID(),
		lessons:    []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		review:     primitive.NewObjectID(),
	}

	seedCategories(ctx, db, ids)
	seedUsers(ctx, db, ids)
	thumbnailURL := uploadThumbnail(ctx, s3Client, "thumbnails/seed-"+ids.course.Hex()+".webp")
	seedCourse(ctx, db, ids, thumbnailURL)

	log.Println("Seed completed successfully!")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{
		repository.CollectionUsers,
		repository.CollectionCategories,
		repository.CollectionCourses,
		repository.CollectionSections,
		repository.CollectionSubSections,
		repository.CollectionReviews,
		repository.CollectionProgress,
		repository.CollectionPayments,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
}

func seedCategories(ctx context.Context, db *mongo.Database, ids *seedIDs) {
	now := time.Now()
	names := []struct{ name, description string }{
		{"Web Development", "Frontend, backend and everything between"},
		{"Databases", "Relational and document stores"},
		{"DevOps", "Shipping and running software"},
	}

	docs := make([]interface{}, 0, len(names))
	for i, n := range names {
		id := primitive.NewObjectID()
		ids.categories = append(ids.categories, id)
		courses := []primitive.ObjectID{}
		if i == 1 {
			courses = append(courses, ids.course)
		}
		docs = append(docs, models.Category{
			ID:          id,
			Name:        n.name,
			Description: n.description,
			Courses:     courses,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	result, err := db.Collection(repository.CollectionCategories).InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	log.Printf("Seeded %d categories", len(result.InsertedIDs))
}

func seedUsers(ctx context.Context, db *mongo.Database, ids *seedIDs) {
	password, err := auth.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	user := func(id primitive.ObjectID, first, last, email, role string) models.User {
		return models.User{
			ID:              id,
			FirstName:       first,
			LastName:        last,
			Email:           email,
			Password:        password,
			Role:            role,
			ImageURL:        "https://api.dicebear.com/5.x/initials/svg?seed=" + first + "%20" + last,
			CoursesCreated:  []primitive.ObjectID{},
			CoursesEnrolled: []primitive.ObjectID{},
			Reviews:         []primitive.ObjectID{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	admin := user(ids.admin, "Grace", "Hopper", "admin@example.com", models.RoleAdmin)
	instructor := user(ids.instructor, "Ada", "Lovelace", "instructor@example.com", models.RoleInstructor)
	instructor.CoursesCreated = []primitive.ObjectID{ids.course}
	student := user(ids.student, "Alan", "Turing", "student@example.com", models.RoleStudent)
	student.CoursesEnrolled = []primitive.ObjectID{ids.course}
	student.Reviews = []primitive.ObjectID{ids.review}

	result, err := db.Collection(repository.CollectionUsers).InsertMany(ctx, []interface{}{admin, instructor, student})
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users (password: password123)", len(result.InsertedIDs))
}

func seedCourse(ctx context.Context, db *mongo.Database, ids *seedIDs, thumbnailURL string) {
	now := time.Now()

	lessons := []models.SubSection{
		{
			ID:                  ids.lessons[0],
			SectionID:           ids.section,
			CourseID:            ids.course,
			Title:               "Documents and collections",
			Description:         "How MongoDB stores data.",
			TimeDurationSeconds: 65,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
		{
			ID:                  ids.lessons[1],
			SectionID:           ids.section,
			CourseID:            ids.course,
			Title:               "Connecting from Go",
			Description:         "Using the official driver.",
			TimeDurationSeconds: 40,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
	lessonDocs := make([]interface{}, len(lessons))
	for i := range lessons {
		lessonDocs[i] = lessons[i]
	}
	if _, err := db.Collection(repository.CollectionSubSections).InsertMany(ctx, lessonDocs); err != nil {
		log.Fatalf("Failed to seed lessons: %v", err)
	}

	section := models.Section{
		ID:          ids.section,
		CourseID:    ids.course,
		Title:       "Getting started",
		SubSections: ids.lessons,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := db.Collection(repository.CollectionSections).InsertOne(ctx, section); err != nil {
		log.Fatalf("Failed to seed section: %v", err)
	}

	course := models.Course{
		ID:                ids.course,
		CourseName:        "MongoDB for Go developers",
		CourseDescription: "Model, query and index document data from Go services.",
		InstructorID:      ids.instructor,
		WhatYouWillLearn:  []string{"Document modelling", "Aggregation pipelines"},
		Price:             1000,
		Language:          "English",
		Tags:              []string{"mongodb", "go"},
		Instructions:      []string{"Basic Go knowledge"},
		CategoryID:        ids.categories[1],
		ThumbnailURL:      thumbnailURL,
		Status:            models.CoursePublished,
		Sections:          []primitive.ObjectID{ids.section},
		Reviews:           []primitive.ObjectID{ids.review},
		StudentsEnrolled:  []primitive.ObjectID{ids.student},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := db.Collection(repository.CollectionCourses).InsertOne(ctx, course); err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	review := models.RatingAndReview{
		ID:        ids.review,
		UserID:    ids.student,
		CourseID:  ids.course,
		Rating:    5,
		Review:    "Clear and practical.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.Collection(repository.CollectionReviews).InsertOne(ctx, review); err != nil {
		log.Fatalf("Failed to seed review: %v", err)
	}

	progress := models.CourseProgress{
		UserID:          ids.student,
		CourseID:        ids.course,
		CompletedVideos: []primitive.ObjectID{ids.lessons[0]},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := db.Collection(repository.CollectionProgress).InsertOne(ctx, progress); err != nil {
		log.Fatalf("Failed to seed progress: %v", err)
	}

	log.Printf("Seeded course %q with %d lessons", course.CourseName, len(lessons))
}

// uploadThumbnail renders a placeholder thumbnail and stores it as WebP.
// Upload failures only log; the course is seeded without a thumbnail.
func uploadThumbnail(ctx context.Context, s3Client *storage.S3Client, key string) string {
	canvas := imaging.New(640, 360, color.NRGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff})

	var png bytes.Buffer
	if err := imaging.Encode(&png, canvas, imaging.PNG); err != nil {
		log.Printf("Warning: Failed to render thumbnail: %v", err)
		return ""
	}

	webp, err := media.ImageOptions{}.Convert(png.Bytes())
	if err != nil {
		log.Printf("Warning: Failed to convert thumbnail: %v", err)
		return ""
	}

	if err := s3Client.PutObject(ctx, key, bytes.NewReader(webp), int64(len(webp)), "image/webp"); err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return ""
	}

	log.Printf("Uploaded placeholder thumbnail: %s", key)
	return s3Client.PublicURL(key)
}
