package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is an ordered group of lessons inside a course.
type Section struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	CourseID    primitive.ObjectID   `json:"courseId" bson:"courseId"`
	Title       string               `json:"title" bson:"title" example:"Getting started"`
	SubSections []primitive.ObjectID `json:"subSections" bson:"subSections"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// SubSection is a single video lesson.
type SubSection struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	SectionID           primitive.ObjectID `json:"sectionId" bson:"sectionId"`
	CourseID            primitive.ObjectID `json:"courseId" bson:"courseId"`
	Title               string             `json:"title" bson:"title" example:"Installing the driver"`
	Description         string             `json:"description" bson:"description"`
	VideoURL            string             `json:"videoUrl,omitempty" bson:"videoUrl"`
	TimeDurationSeconds Seconds            `json:"timeDurationSeconds" bson:"timeDurationSeconds" example:"65"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateSectionRequest appends a section to a course.
type CreateSectionRequest struct {
	CourseID string `json:"courseId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
	Title    string `json:"title" binding:"required,max=200" example:"Getting started"`
}

// UpdateSectionRequest renames a section.
type UpdateSectionRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"Introduction"`
}

// DeleteSectionRequest names the course that owns the section.
type DeleteSectionRequest struct {
	CourseID string `json:"courseId" form:"courseId" binding:"required,objectid"`
}

// SubSectionForm carries lesson fields of a multipart request.
// Duration is used when the uploaded video cannot be probed.
type SubSectionForm struct {
	SectionID   string   `form:"sectionId" binding:"required,objectid"`
	Title       string   `form:"title" binding:"required,max=200"`
	Description string   `form:"description" binding:"required"`
	Duration    *float64 `form:"timeDuration" binding:"omitempty,gte=0,finite"`
}

// UpdateSubSectionForm carries a partial lesson update.
type UpdateSubSectionForm struct {
	Title       *string  `form:"title" binding:"omitempty,min=1,max=200"`
	Description *string  `form:"description"`
	Duration    *float64 `form:"timeDuration" binding:"omitempty,gte=0,finite"`
}

// DeleteSubSectionRequest names the section that owns the lesson.
type DeleteSubSectionRequest struct {
	SectionID string `json:"sectionId" form:"sectionId" binding:"required,objectid"`
}
