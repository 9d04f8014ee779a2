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

// SubSectionPatch lists the lesson fields to change. Nil fields are kept.
type SubSectionPatch struct {
	Title       *string
	Description *string
	VideoURL    *string
	Duration    *float64
}

// SubSectionRepository defines the interface for lesson data operations.
type SubSectionRepository interface {
	Create(ctx context.Context, sub *models.SubSection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubSection, error)
	FindBySections(ctx context.Context, sectionIDs []primitive.ObjectID) ([]models.SubSection, error)
	Update(ctx context.Context, id primitive.ObjectID, patch SubSectionPatch) (*models.SubSection, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteBySection(ctx context.Context, sectionID primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error
	CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int, error)
}

type subSectionRepository struct {
	collection *mongo.Collection
}

// NewSubSectionRepository creates a new SubSectionRepository.
func NewSubSectionRepository(db *mongo.Database) SubSectionRepository {
	return &subSectionRepository{
		collection: db.Collection(CollectionSubSections),
	}
}

func (r *subSectionRepository) Create(ctx context.Context, sub *models.SubSection) error {
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return err
	}

	sub.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *subSectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubSection, error) {
	var sub models.SubSection

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSubSectionNotFound
		}
		return nil, err
	}

	return &sub, nil
}

// FindBySections returns every lesson of the given sections, oldest first.
func (r *subSectionRepository) FindBySections(ctx context.Context, sectionIDs []primitive.ObjectID) ([]models.SubSection, error) {
	if len(sectionIDs) == 0 {
		return []models.SubSection{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"sectionId": bson.M{"$in": sectionIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.SubSection
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.SubSection{}
	}
	return subs, nil
}

// Update applies patch and returns the updated lesson.
func (r *subSectionRepository) Update(ctx context.Context, id primitive.ObjectID, patch SubSectionPatch) (*models.SubSection, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.VideoURL != nil {
		set["videoUrl"] = *patch.VideoURL
	}
	if patch.Duration != nil {
		set["timeDurationSeconds"] = *patch.Duration
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sub models.SubSection
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSubSectionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subSectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrSubSectionNotFound
	}
	return nil
}

func (r *subSectionRepository) DeleteBySection(ctx context.Context, sectionID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"sectionId": sectionID})
	return err
}

func (r *subSectionRepository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"courseId": courseID})
	return err
}

func (r *subSectionRepository) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"courseId": courseID})
	return int(count), err
}
