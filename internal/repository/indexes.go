package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index is one index definition on a collection.
type Index struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// Indexes lists every index the repositories rely on. The unique ones back
// up pre-checks that would otherwise race.
var Indexes = []Index{
	{Collection: CollectionUsers, Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	{Collection: CollectionUsers, Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: CollectionUsers, Keys: bson.D{{Key: "resetTokenHash", Value: 1}}},

	{Collection: CollectionCategories, Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},

	{Collection: CollectionCourses, Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: CollectionCourses, Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "status", Value: 1}}},
	{Collection: CollectionCourses, Keys: bson.D{{Key: "instructorId", Value: 1}}},
	{Collection: CollectionCourses, Keys: bson.D{{Key: "studentsEnrolled", Value: 1}}},

	{Collection: CollectionSections, Keys: bson.D{{Key: "courseId", Value: 1}}},

	{Collection: CollectionSubSections, Keys: bson.D{{Key: "sectionId", Value: 1}}},
	{Collection: CollectionSubSections, Keys: bson.D{{Key: "courseId", Value: 1}}},

	{Collection: CollectionReviews, Keys: bson.D{{Key: "userId", Value: 1}, {Key: "courseId", Value: 1}}, Unique: true},
	{Collection: CollectionReviews, Keys: bson.D{{Key: "courseId", Value: 1}}},
	{Collection: CollectionReviews, Keys: bson.D{{Key: "createdAt", Value: -1}}},

	{Collection: CollectionProgress, Keys: bson.D{{Key: "userId", Value: 1}, {Key: "courseId", Value: 1}}, Unique: true},
	{Collection: CollectionProgress, Keys: bson.D{{Key: "courseId", Value: 1}}},

	{Collection: CollectionPayments, Keys: bson.D{{Key: "orderId", Value: 1}}, Unique: true},
	{Collection: CollectionPayments, Keys: bson.D{{Key: "userId", Value: 1}}},
}

// EnsureIndexes creates every index in Indexes. Existing indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range Indexes {
		if _, err := CreateIndex(ctx, db, idx); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.Collection, err)
		}
	}
	return nil
}

// CreateIndex creates a single index and returns its name.
func CreateIndex(ctx context.Context, db *mongo.Database, idx Index) (string, error) {
	model := mongo.IndexModel{Keys: idx.Keys}
	if idx.Unique {
		model.Options = options.Index().SetUnique(true)
	}
	return db.Collection(idx.Collection).Indexes().CreateOne(ctx, model)
}
