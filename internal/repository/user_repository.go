// Package repository provides MongoDB data access for the marketplace.
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

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*models.User, error)
	List(ctx context.Context, role string, page, limit int) ([]models.User, int, error)
	CountByRole(ctx context.Context) (map[string]int, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update *models.UpdateProfileRequest) (*models.User, error)
	UpdateImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*models.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error
	AddCreatedCourse(ctx context.Context, userID, courseID primitive.ObjectID) error
	RemoveCreatedCourse(ctx context.Context, userID, courseID primitive.ObjectID) error
	AddEnrolledCourse(ctx context.Context, userID, courseID primitive.ObjectID) error
	RemoveEnrolledCourse(ctx context.Context, userID, courseID primitive.ObjectID) error
	PullEnrolledCourse(ctx context.Context, courseID primitive.ObjectID) error
	AddReview(ctx context.Context, userID, reviewID primitive.ObjectID) error
	PullReviews(ctx context.Context, reviewIDs []primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(CollectionUsers),
	}
}

// Create inserts a user. The unique email index backs up the pre-check.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.CoursesCreated = emptyIDs(user.CoursesCreated)
	user.CoursesEnrolled = emptyIDs(user.CoursesEnrolled)
	user.Reviews = emptyIDs(user.Reviews)

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail finds a user by their email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByResetTokenHash finds the user holding a password reset token.
func (r *userRepository) FindByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	if hash == "" {
		return nil, apperrors.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"resetTokenHash": hash})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List returns a page of users, newest first, optionally filtered by role.
func (r *userRepository) List(ctx context.Context, role string, page, limit int) ([]models.User, int, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip(page, limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []models.User{}
	}

	return users, int(total), nil
}

// CountByRole returns the number of users per role.
func (r *userRepository) CountByRole(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Role  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

// UpdateProfile applies the non-nil fields of update.
func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *models.UpdateProfileRequest) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.DateOfBirth != nil {
		set["dateOfBirth"] = *update.DateOfBirth
	}
	if update.ContactNumber != nil {
		set["contactNumber"] = *update.ContactNumber
	}
	if update.About != nil {
		set["about"] = *update.About
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}

	return r.updateAndReturn(ctx, id, bson.M{"$set": set})
}

// UpdateImage replaces the user's display picture.
func (r *userRepository) UpdateImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*models.User, error) {
	return r.updateAndReturn(ctx, id, bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": time.Now()}})
}

// UpdateRole overrides the user's role.
func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	return r.updateAndReturn(ctx, id, bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}})
}

func (r *userRepository) updateAndReturn(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	var user models.User

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// SetPassword stores a new password hash and clears any reset token.
func (r *userRepository) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set":   bson.M{"password": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetTokenHash": "", "resetTokenExpiry": ""},
	})
}

// SetResetToken stores the hash of a password reset token.
func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{
		"resetTokenHash":   tokenHash,
		"resetTokenExpiry": expiry,
		"updatedAt":        time.Now(),
	}})
}

// AddCreatedCourse records course ownership on the instructor.
func (r *userRepository) AddCreatedCourse(ctx context.Context, userID, courseID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"coursesCreated": courseID}})
}

// RemoveCreatedCourse drops the ownership back-reference.
func (r *userRepository) RemoveCreatedCourse(ctx context.Context, userID, courseID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"coursesCreated": courseID}})
}

// AddEnrolledCourse adds a course to the user's enrollment set.
func (r *userRepository) AddEnrolledCourse(ctx context.Context, userID, courseID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"coursesEnrolled": courseID}})
}

// RemoveEnrolledCourse removes a course from the user's enrollment set.
func (r *userRepository) RemoveEnrolledCourse(ctx context.Context, userID, courseID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$pull": bson.M{"coursesEnrolled": courseID}})
}

// PullEnrolledCourse removes a course from every user enrolled in it.
func (r *userRepository) PullEnrolledCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"coursesEnrolled": courseID},
		bson.M{"$pull": bson.M{"coursesEnrolled": courseID}},
	)
	return err
}

// AddReview links a review to its author.
func (r *userRepository) AddReview(ctx context.Context, userID, reviewID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"$addToSet": bson.M{"reviews": reviewID}})
}

// PullReviews removes review ids from every user holding them.
func (r *userRepository) PullReviews(ctx context.Context, reviewIDs []primitive.ObjectID) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"reviews": bson.M{"$in": reviewIDs}},
		bson.M{"$pull": bson.M{"reviews": bson.M{"$in": reviewIDs}}},
	)
	return err
}

// Delete removes a user from the database.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
