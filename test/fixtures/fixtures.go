// Package fixtures provides test data builders for API tests.
package fixtures

import (
	"fmt"
	"sync"
	"time"

	"coursehub/internal/models"
	"coursehub/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Password is the plain text password of every built user.
const Password = "password123"

var passwordHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword(Password)
	if err != nil {
		panic(err)
	}
	return hash
})

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a student with a unique email.
func NewUser() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		user: models.User{
			ID:              primitive.NewObjectID(),
			FirstName:       "Test",
			LastName:        "User",
			Email:           fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[16:]),
			Password:        passwordHash(),
			Role:            models.RoleStudent,
			CoursesCreated:  []primitive.ObjectID{},
			CoursesEnrolled: []primitive.ObjectID{},
			Reviews:         []primitive.ObjectID{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.user.FirstName = first
	b.user.LastName = last
	return b
}

func (b *UserBuilder) AsInstructor() *UserBuilder {
	b.user.Role = models.RoleInstructor
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Category Fixtures =====

// NewCategory returns a category with a unique name.
func NewCategory(name string) *models.Category {
	if name == "" {
		name = "Category " + primitive.NewObjectID().Hex()[18:]
	}
	return &models.Category{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Courses about " + name,
		Courses:     []primitive.ObjectID{},
	}
}

// ===== Course Fixtures =====

// CourseBuilder provides fluent API for building test courses.
type CourseBuilder struct {
	course models.Course
}

// NewCourse creates a published course owned by instructorID.
func NewCourse(instructorID, categoryID primitive.ObjectID) *CourseBuilder {
	return &CourseBuilder{
		course: models.Course{
			ID:                primitive.NewObjectID(),
			CourseName:        "Test Course",
			CourseDescription: "A course used in tests",
			InstructorID:      instructorID,
			WhatYouWillLearn:  []string{"Testing"},
			Price:             1000,
			Language:          "English",
			Tags:              []string{"test"},
			Instructions:      []string{"None"},
			CategoryID:        categoryID,
			Status:            models.CoursePublished,
			Sections:          []primitive.ObjectID{},
			Reviews:           []primitive.ObjectID{},
			StudentsEnrolled:  []primitive.ObjectID{},
		},
	}
}

func (b *CourseBuilder) WithName(name string) *CourseBuilder {
	b.course.CourseName = name
	return b
}

func (b *CourseBuilder) WithPrice(price float64) *CourseBuilder {
	b.course.Price = price
	return b
}

func (b *CourseBuilder) Draft() *CourseBuilder {
	b.course.Status = models.CourseDraft
	return b
}

func (b *CourseBuilder) WithStudents(ids ...primitive.ObjectID) *CourseBuilder {
	b.course.StudentsEnrolled = append(b.course.StudentsEnrolled, ids...)
	return b
}

func (b *CourseBuilder) BuildPtr() *models.Course {
	c := b.course
	return &c
}

// ===== Content Fixtures =====

// NewSection returns an empty section of courseID.
func NewSection(courseID primitive.ObjectID, title string) *models.Section {
	return &models.Section{
		ID:          primitive.NewObjectID(),
		CourseID:    courseID,
		Title:       title,
		SubSections: []primitive.ObjectID{},
	}
}

// NewSubSection returns a lesson of the given length.
func NewSubSection(section *models.Section, title string, seconds float64) *models.SubSection {
	return &models.SubSection{
		ID:                  primitive.NewObjectID(),
		SectionID:           section.ID,
		CourseID:            section.CourseID,
		Title:               title,
		Description:         title,
		VideoURL:            "https://cdn.example.com/videos/" + primitive.NewObjectID().Hex() + ".mp4",
		TimeDurationSeconds: models.Seconds(seconds),
	}
}
