package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseStatus controls catalog visibility.
type CourseStatus string

const (
	// CourseDraft is visible only to its owner and admins.
	CourseDraft CourseStatus = "Draft"
	// CoursePublished is visible in public listings.
	CoursePublished CourseStatus = "Published"
)

// Course is a purchasable unit of instructional content.
type Course struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	CourseName        string               `json:"courseName" bson:"courseName" example:"MongoDB for Go developers"`
	CourseDescription string               `json:"courseDescription" bson:"courseDescription"`
	InstructorID      primitive.ObjectID   `json:"instructorId" bson:"instructorId"`
	WhatYouWillLearn  []string             `json:"whatYouWillLearn" bson:"whatYouWillLearn"`
	Price             float64              `json:"price" bson:"price" example:"1000"`
	Language          string               `json:"language" bson:"language" example:"English"`
	Tags              []string             `json:"tags" bson:"tags"`
	Instructions      []string             `json:"instructions" bson:"instructions"`
	CategoryID        primitive.ObjectID   `json:"categoryId" bson:"categoryId,omitempty"`
	ThumbnailURL      string               `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Status            CourseStatus         `json:"status" bson:"status" example:"Published"`
	Sections          []primitive.ObjectID `json:"sections" bson:"sections"`
	Reviews           []primitive.ObjectID `json:"reviews" bson:"reviews"`
	StudentsEnrolled  []primitive.ObjectID `json:"studentsEnrolled,omitempty" bson:"studentsEnrolled"`
	StudentCount      int                  `json:"studentCount" bson:"-" example:"42"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Public returns a copy for catalog readers: the student list is replaced
// by its size.
func (c Course) Public() Course {
	if c.StudentsEnrolled != nil {
		c.StudentCount = len(c.StudentsEnrolled)
	}
	c.StudentsEnrolled = nil
	return c
}

// PublicCourses applies Public to every course.
func PublicCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i := range courses {
		out[i] = courses[i].Public()
	}
	return out
}

// IsEnrolled reports whether userID is in the course's student set.
func (c *Course) IsEnrolled(userID primitive.ObjectID) bool {
	for _, id := range c.StudentsEnrolled {
		if id == userID {
			return true
		}
	}
	return false
}

// CourseForm carries the editable course fields of a multipart request.
// Create and edit both require every field: edits replace them wholesale.
type CourseForm struct {
	CourseName        string   `form:"courseName" binding:"required,max=200"`
	CourseDescription string   `form:"courseDescription" binding:"required"`
	WhatYouWillLearn  []string `form:"whatYouWillLearn" binding:"required,min=1,dive,required"`
	Price             *float64 `form:"price" binding:"required,gte=0,finite"`
	Language          string   `form:"language" binding:"required"`
	Tags              []string `form:"tags" binding:"required,min=1,dive,required"`
	Instructions      []string `form:"instructions" binding:"required,min=1,dive,required"`
	CategoryID        string   `form:"categoryId" binding:"required,objectid"`
	Status            string   `form:"status" binding:"omitempty,coursestatus"`
}

// InstructorSummary is the public view of a course's owner.
type InstructorSummary struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	ImageURL  string             `json:"imageUrl"`
	About     string             `json:"about,omitempty"`
}

// SectionContent is a section with its lessons resolved.
type SectionContent struct {
	Section
	Lessons []SubSection `json:"lessons"`
}

// CourseDetail is the fully populated course tree.
type CourseDetail struct {
	Course
	Instructor           *InstructorSummary `json:"instructor,omitempty"`
	CategoryName         string             `json:"categoryName,omitempty"`
	Content              []SectionContent   `json:"content"`
	TotalDurationSeconds float64            `json:"totalDurationSeconds" example:"105"`
	TotalDuration        string             `json:"totalDuration" example:"1:45"`
	AverageRating        float64            `json:"averageRating" example:"4.5"`
	RatingCount          int                `json:"ratingCount" example:"12"`
}

// CourseContentView is the enrolled (playable) view of a course.
type CourseContentView struct {
	CourseDetail
	CompletedVideos    []primitive.ObjectID `json:"completedVideos"`
	ProgressPercentage float64              `json:"progressPercentage" example:"50"`
}

// Catalog sort orders.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CatalogQuery holds listing-page parameters.
type CatalogQuery struct {
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
	Search   string   `form:"search"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0,finite"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0,finite"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=newest oldest price-low price-high"`
	Status   string   `form:"status" binding:"omitempty,coursestatus"`

	// Set by the service, never bound from the request.
	InstructorID  primitive.ObjectID `form:"-"`
	PublishedOnly bool               `form:"-"`
}

// CourseListResponse is a page of catalog results.
type CourseListResponse struct {
	Items       []Course `json:"items"`
	TotalCount  int      `json:"totalCount" example:"25"`
	CurrentPage int      `json:"currentPage" example:"1"`
	TotalPages  int      `json:"totalPages" example:"3"`
	HasMore     bool     `json:"hasMore" example:"true"`
}

// NewCourseListResponse computes the page metadata for a catalog page.
func NewCourseListResponse(items []Course, total, page, limit int) *CourseListResponse {
	if items == nil {
		items = []Course{}
	}
	return &CourseListResponse{
		Items:       items,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
		HasMore:     page < TotalPages(total, limit),
	}
}

// CourseListPage is a page of courses for admin listings.
type CourseListPage struct {
	Items      []Course   `json:"items"`
	Pagination Pagination `json:"pagination"`
}
