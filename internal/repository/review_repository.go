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
)

// ReviewRepository defines the interface for rating and review data operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.RatingAndReview) error
	FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*models.RatingAndReview, error)
	AverageForCourse(ctx context.Context, courseID primitive.ObjectID) (float64, int, error)
	List(ctx context.Context, limit int) ([]models.RatingAndReview, error)
	IDsByCourse(ctx context.Context, courseID primitive.ObjectID) ([]primitive.ObjectID, error)
	IDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(CollectionReviews),
	}
}

// Create inserts a review. The unique (userId, courseId) index rejects a
// second review of the same course.
func (r *reviewRepository) Create(ctx context.Context, review *models.RatingAndReview) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyReviewed
		}
		return err
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *reviewRepository) FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*models.RatingAndReview, error) {
	var review models.RatingAndReview

	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

// AverageForCourse returns the mean rating and the number of ratings.
// A course without ratings yields 0, 0.
func (r *reviewRepository) AverageForCourse(ctx context.Context, courseID primitive.ObjectID) (float64, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"courseId": courseID}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Average, rows[0].Count, nil
}

// List returns the newest reviews first. A limit of 0 returns all of them.
func (r *reviewRepository) List(ctx context.Context, limit int) ([]models.RatingAndReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.RatingAndReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.RatingAndReview{}
	}
	return reviews, nil
}

func (r *reviewRepository) IDsByCourse(ctx context.Context, courseID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.ids(ctx, bson.M{"courseId": courseID})
}

func (r *reviewRepository) IDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.ids(ctx, bson.M{"userId": userID})
}

func (r *reviewRepository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"courseId": courseID})
	return err
}

func (r *reviewRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

func (r *reviewRepository) ids(ctx context.Context, filter bson.M) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
