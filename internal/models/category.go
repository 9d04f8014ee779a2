package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups courses in the catalog.
type Category struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string               `json:"name" bson:"name" example:"Databases"`
	Description string               `json:"description,omitempty" bson:"description,omitempty" example:"Relational and document stores"`
	Courses     []primitive.ObjectID `json:"courses" bson:"courses"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=60" example:"Databases"`
	Description string `json:"description" binding:"max=300" example:"Relational and document stores"`
}

// CategoryCourses is the cached courses-by-category page.
type CategoryCourses struct {
	Category    Category `json:"category"`
	Courses     []Course `json:"courses"`
	MostSelling []Course `json:"mostSelling"`
}
