package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseProgress records the lessons a student has completed in a course.
type CourseProgress struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID   `json:"userId" bson:"userId"`
	CourseID        primitive.ObjectID   `json:"courseId" bson:"courseId"`
	CompletedVideos []primitive.ObjectID `json:"completedVideos" bson:"completedVideos"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// MarkLectureRequest marks one lesson as completed.
type MarkLectureRequest struct {
	CourseID     string `json:"courseId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
	SubSectionID string `json:"subSectionId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
}

// ProgressPercentage returns completed/total as a percentage rounded to two decimals.
func ProgressPercentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(completed) * 100 / float64(total)
	return float64(int(p*100+0.5)) / 100
}
