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

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	AddCourse(ctx context.Context, categoryID, courseID primitive.ObjectID) error
	RemoveCourse(ctx context.Context, categoryID, courseID primitive.ObjectID) error
}

type categoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{
		collection: db.Collection(CollectionCategories),
	}
}

// Create inserts a category. Names are unique.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": category.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrCategoryAlreadyExists
	}

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	category.Courses = emptyIDs(category.Courses)

	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrCategoryAlreadyExists
		}
		return err
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

// FindAll returns every category sorted by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

// AddCourse appends a course to the category.
func (r *categoryRepository) AddCourse(ctx context.Context, categoryID, courseID primitive.ObjectID) error {
	return r.update(ctx, categoryID, bson.M{"$addToSet": bson.M{"courses": courseID}})
}

// RemoveCourse detaches a course from the category.
func (r *categoryRepository) RemoveCourse(ctx context.Context, categoryID, courseID primitive.ObjectID) error {
	return r.update(ctx, categoryID, bson.M{"$pull": bson.M{"courses": courseID}})
}

func (r *categoryRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
