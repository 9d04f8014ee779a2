package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PlatformStats is the admin dashboard rollup.
type PlatformStats struct {
	TotalUsers       int     `json:"totalUsers" example:"120"`
	TotalStudents    int     `json:"totalStudents" example:"100"`
	TotalInstructors int     `json:"totalInstructors" example:"18"`
	TotalCourses     int     `json:"totalCourses" example:"40"`
	TotalRevenue     float64 `json:"totalRevenue" example:"125000"`
}

// InstructorCourseStats is one row of an instructor's revenue breakdown.
type InstructorCourseStats struct {
	CourseID              primitive.ObjectID `json:"courseId" bson:"_id"`
	CourseName            string             `json:"courseName" bson:"courseName"`
	Status                CourseStatus       `json:"status" bson:"status"`
	Price                 float64            `json:"price" bson:"price"`
	StudentsEnrolledCount int                `json:"studentsEnrolledCount" bson:"studentsEnrolledCount"`
	RevenueGenerated      float64            `json:"revenueGenerated" bson:"revenueGenerated"`
}

// GenerateDescriptionRequest asks for an AI-written course description.
type GenerateDescriptionRequest struct {
	CourseName string   `json:"courseName" binding:"required,max=200" example:"MongoDB for Go developers"`
	Keywords   []string `json:"keywords" binding:"max=10,dive,max=40"`
}

// GenerateDescriptionResponse carries the generated text.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
