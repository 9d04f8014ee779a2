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

// ProgressRepository defines the interface for course progress operations.
type ProgressRepository interface {
	Init(ctx context.Context, userID, courseID primitive.ObjectID) error
	Find(ctx context.Context, userID, courseID primitive.ObjectID) (*models.CourseProgress, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CourseProgress, error)
	MarkCompleted(ctx context.Context, userID, courseID, subSectionID primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type progressRepository struct {
	collection *mongo.Collection
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db *mongo.Database) ProgressRepository {
	return &progressRepository{
		collection: db.Collection(CollectionProgress),
	}
}

// Init creates an empty progress record unless one already exists.
func (r *progressRepository) Init(ctx context.Context, userID, courseID primitive.ObjectID) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID, "courseId": courseID},
		bson.M{"$setOnInsert": bson.M{
			"completedVideos": []primitive.ObjectID{},
			"createdAt":       now,
			"updatedAt":       now,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *progressRepository) Find(ctx context.Context, userID, courseID primitive.ObjectID) (*models.CourseProgress, error) {
	var progress models.CourseProgress

	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&progress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, err
	}

	return &progress, nil
}

func (r *progressRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CourseProgress, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CourseProgress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.CourseProgress{}
	}
	return records, nil
}

// MarkCompleted adds a lesson to the completed set, creating the record if
// needed. A lesson that is already in the set yields ErrLectureCompleted.
func (r *progressRepository) MarkCompleted(ctx context.Context, userID, courseID, subSectionID primitive.ObjectID) error {
	now := time.Now()
	filter := bson.M{"userId": userID, "courseId": courseID}

	result, err := r.collection.UpdateOne(ctx, filter,
		bson.M{
			"$addToSet":    bson.M{"completedVideos": subSectionID},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 && result.UpsertedCount == 0 {
		return apperrors.ErrLectureCompleted
	}

	_, err = r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"updatedAt": now}})
	return err
}

func (r *progressRepository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"courseId": courseID})
	return err
}

func (r *progressRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
