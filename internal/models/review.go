package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingAndReview is one student's rating of one course.
type RatingAndReview struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	CourseID  primitive.ObjectID `json:"courseId" bson:"courseId"`
	Rating    int                `json:"rating" bson:"rating" example:"4"`
	Review    string             `json:"review" bson:"review" example:"Clear and practical."`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateReviewRequest is the payload for rating a course.
type CreateReviewRequest struct {
	CourseID string `json:"courseId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Review   string `json:"review" binding:"required,max=2000" example:"Clear and practical."`
}

// AverageRating is the mean rating of a course.
// HasRatings is false when nobody has rated the course yet.
type AverageRating struct {
	CourseID      primitive.ObjectID `json:"courseId"`
	AverageRating float64            `json:"averageRating" example:"4.5"`
	Count         int                `json:"count" example:"12"`
	HasRatings    bool               `json:"hasRatings" example:"true"`
	Message       string             `json:"message,omitempty" example:"no ratings yet"`
}
