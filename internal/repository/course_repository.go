package repository

import (
	"context"
	"errors"
	"time"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// CourseRepository defines the interface for course data operations.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error)
	Search(ctx context.Context, query models.CatalogQuery) ([]models.Course, int, error)
	FindPublishedByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Course, error)
	TopSelling(ctx context.Context, limit int) ([]models.Course, error)
	CountByInstructor(ctx context.Context, instructorID primitive.ObjectID) (int, error)
	Totals(ctx context.Context) (int, float64, error)
	InstructorStats(ctx context.Context, instructorID primitive.ObjectID) ([]models.InstructorCourseStats, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddSection(ctx context.Context, courseID, sectionID primitive.ObjectID) error
	RemoveSection(ctx context.Context, courseID, sectionID primitive.ObjectID) error
	AddReview(ctx context.Context, courseID, reviewID primitive.ObjectID) error
	PullReviews(ctx context.Context, reviewIDs []primitive.ObjectID) error
	AddStudent(ctx context.Context, courseID, userID primitive.ObjectID) error
	RemoveStudent(ctx context.Context, courseID, userID primitive.ObjectID) error
	PullStudent(ctx context.Context, userID primitive.ObjectID) error
}

type courseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *mongo.Database) CourseRepository {
	return &courseRepository{
		collection: db.Collection(CollectionCourses),
	}
}

// Create inserts a course with empty sections, reviews and students.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	course.Sections = emptyIDs(course.Sections)
	course.Reviews = emptyIDs(course.Reviews)
	course.StudentsEnrolled = emptyIDs(course.StudentsEnrolled)
	if course.Status == "" {
		course.Status = models.CourseDraft
	}

	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return err
	}

	course.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a course by its ID.
func (r *courseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	return &course, nil
}

// FindByIDs returns the courses with the given ids, in the order given.
// Missing ids are skipped.
func (r *courseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	courses, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	ordered := make([]models.Course, 0, len(courses))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// Search runs a catalog query. The count and the page are fetched
// concurrently.
func (r *courseRepository) Search(ctx context.Context, query models.CatalogQuery) ([]models.Course, int, error) {
	filter := CatalogFilter(query)
	opts := options.Find().
		SetSort(CatalogSort(query.Sort)).
		SetSkip(skip(query.Page, query.Limit)).
		SetLimit(int64(query.Limit))

	var (
		total   int64
		courses []models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = r.find(gctx, filter, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return courses, int(total), nil
}

// FindPublishedByCategory returns a category's published courses, newest first.
func (r *courseRepository) FindPublishedByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Course, error) {
	opts := options.Find().SetSort(CatalogSort(models.SortNewest))
	return r.find(ctx, bson.M{"categoryId": categoryID, "status": models.CoursePublished}, opts)
}

// TopSelling returns the published courses with the most students.
func (r *courseRepository) TopSelling(ctx context.Context, limit int) ([]models.Course, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.CoursePublished}}},
		{{Key: "$addFields", Value: bson.M{"enrolledCount": sizeOf("$studentsEnrolled")}}},
		{{Key: "$sort", Value: bson.D{{Key: "enrolledCount", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// CountByInstructor counts the courses an instructor owns.
func (r *courseRepository) CountByInstructor(ctx context.Context, instructorID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"instructorId": instructorID})
	return int(count), err
}

// Totals returns the course count and the sum of price × enrolled students
// over every course.
func (r *courseRepository) Totals(ctx context.Context) (int, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "courses", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: revenueOf()}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Courses int     `bson:"courses"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Courses, rows[0].Revenue, nil
}

// InstructorStats returns the per-course revenue breakdown of an instructor.
func (r *courseRepository) InstructorStats(ctx context.Context, instructorID primitive.ObjectID) ([]models.InstructorCourseStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"instructorId": instructorID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "courseName", Value: 1},
			{Key: "status", Value: 1},
			{Key: "price", Value: 1},
			{Key: "studentsEnrolledCount", Value: sizeOf("$studentsEnrolled")},
			{Key: "revenueGenerated", Value: revenueOf()},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.InstructorCourseStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.InstructorCourseStats{}
	}
	return stats, nil
}

// Update replaces the editable fields of a course.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now()
	return r.update(ctx, course.ID, bson.M{"$set": bson.M{
		"courseName":        course.CourseName,
		"courseDescription": course.CourseDescription,
		"whatYouWillLearn":  course.WhatYouWillLearn,
		"price":             course.Price,
		"language":          course.Language,
		"tags":              course.Tags,
		"instructions":      course.Instructions,
		"categoryId":        course.CategoryID,
		"thumbnailUrl":      course.ThumbnailURL,
		"status":            course.Status,
		"updatedAt":         course.UpdatedAt,
	}})
}

// Delete removes a course document.
func (r *courseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// AddSection appends a section to the course outline.
func (r *courseRepository) AddSection(ctx context.Context, courseID, sectionID primitive.ObjectID) error {
	return r.update(ctx, courseID, bson.M{"$push": bson.M{"sections": sectionID}})
}

// RemoveSection removes a section from the course outline.
func (r *courseRepository) RemoveSection(ctx context.Context, courseID, sectionID primitive.ObjectID) error {
	return r.update(ctx, courseID, bson.M{"$pull": bson.M{"sections": sectionID}})
}

// AddReview links a review to the course.
func (r *courseRepository) AddReview(ctx context.Context, courseID, reviewID primitive.ObjectID) error {
	return r.update(ctx, courseID, bson.M{"$addToSet": bson.M{"reviews": reviewID}})
}

// PullReviews removes review ids from every course holding them.
func (r *courseRepository) PullReviews(ctx context.Context, reviewIDs []primitive.ObjectID) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"reviews": bson.M{"$in": reviewIDs}},
		bson.M{"$pull": bson.M{"reviews": bson.M{"$in": reviewIDs}}},
	)
	return err
}

// AddStudent enrolls userID. The membership check and the write are one
// conditional update, so two concurrent calls cannot both succeed.
func (r *courseRepository) AddStudent(ctx context.Context, courseID, userID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": courseID, "studentsEnrolled": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"studentsEnrolled": userID}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 1 {
		return nil
	}

	if _, err := r.FindByID(ctx, courseID); err != nil {
		return err
	}
	return apperrors.ErrAlreadyEnrolled
}

// RemoveStudent unenrolls userID.
func (r *courseRepository) RemoveStudent(ctx context.Context, courseID, userID primitive.ObjectID) error {
	return r.update(ctx, courseID, bson.M{"$pull": bson.M{"studentsEnrolled": userID}})
}

// PullStudent removes userID from every course.
func (r *courseRepository) PullStudent(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"studentsEnrolled": userID},
		bson.M{"$pull": bson.M{"studentsEnrolled": userID}},
	)
	return err
}

func (r *courseRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Course, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (r *courseRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

func sizeOf(field string) bson.M {
	return bson.M{"$size": bson.M{"$ifNull": bson.A{field, bson.A{}}}}
}

func revenueOf() bson.M {
	return bson.M{"$multiply": bson.A{"$price", sizeOf("$studentsEnrolled")}}
}
