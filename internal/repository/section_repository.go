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
)

// SectionRepository defines the interface for section data operations.
type SectionRepository interface {
	Create(ctx context.Context, section *models.Section) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Section, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Section, error)
	UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*models.Section, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error
	AddSubSection(ctx context.Context, sectionID, subSectionID primitive.ObjectID) error
	RemoveSubSection(ctx context.Context, sectionID, subSectionID primitive.ObjectID) error
}

type sectionRepository struct {
	collection *mongo.Collection
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(db *mongo.Database) SectionRepository {
	return &sectionRepository{
		collection: db.Collection(CollectionSections),
	}
}

func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	now := time.Now()
	section.CreatedAt = now
	section.UpdatedAt = now
	section.SubSections = emptyIDs(section.SubSections)

	result, err := r.collection.InsertOne(ctx, section)
	if err != nil {
		return err
	}

	section.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *sectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Section, error) {
	var section models.Section

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&section)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, err
	}

	return &section, nil
}

// FindByIDs returns sections in the order of ids. Dangling ids are skipped.
func (r *sectionRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Section, error) {
	if len(ids) == 0 {
		return []models.Section{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.Section
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Section, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	sections := make([]models.Section, 0, len(found))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

func (r *sectionRepository) UpdateTitle(ctx context.Context, id primitive.ObjectID, title string) (*models.Section, error) {
	if err := r.update(ctx, id, bson.M{"$set": bson.M{"title": title, "updatedAt": time.Now()}}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *sectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrSectionNotFound
	}
	return nil
}

func (r *sectionRepository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"courseId": courseID})
	return err
}

func (r *sectionRepository) AddSubSection(ctx context.Context, sectionID, subSectionID primitive.ObjectID) error {
	return r.update(ctx, sectionID, bson.M{
		"$push": bson.M{"subSections": subSectionID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *sectionRepository) RemoveSubSection(ctx context.Context, sectionID, subSectionID primitive.ObjectID) error {
	return r.update(ctx, sectionID, bson.M{
		"$pull": bson.M{"subSections": subSectionID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *sectionRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrSectionNotFound
	}
	return nil
}
