// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents an account on the platform.
type User struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	FirstName        string               `json:"firstName" bson:"firstName" example:"Ada"`
	LastName         string               `json:"lastName" bson:"lastName" example:"Lovelace"`
	Email            string               `json:"email" bson:"email" example:"ada@example.com"`
	Password         string               `json:"-" bson:"password"`
	Role             string               `json:"role" bson:"role" example:"student"`
	DateOfBirth      string               `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty" example:"1990-12-10"`
	ContactNumber    string               `json:"contactNumber,omitempty" bson:"contactNumber,omitempty" example:"+628123456789"`
	About            string               `json:"about,omitempty" bson:"about,omitempty"`
	Gender           string               `json:"gender,omitempty" bson:"gender,omitempty" example:"female"`
	ImageURL         string               `json:"imageUrl" bson:"imageUrl"`
	ResetTokenHash   string               `json:"-" bson:"resetTokenHash,omitempty"`
	ResetTokenExpiry *time.Time           `json:"-" bson:"resetTokenExpiry,omitempty"`
	CoursesCreated   []primitive.ObjectID `json:"coursesCreated" bson:"coursesCreated"`
	CoursesEnrolled  []primitive.ObjectID `json:"coursesEnrolled" bson:"coursesEnrolled"`
	Reviews          []primitive.ObjectID `json:"reviews" bson:"reviews"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   primitive.ObjectID
	Role string
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	FirstName       string `json:"firstName" binding:"required,min=1,max=50" example:"Ada"`
	LastName        string `json:"lastName" binding:"required,min=1,max=50" example:"Lovelace"`
	Email           string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"secret123"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"secret123"`
	AccountType     string `json:"accountType" binding:"required,accounttype" example:"student"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn int64  `json:"expiresIn" example:"86400"`
	User      *User  `json:"user"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"ada@example.com"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8,max=72" example:"newsecret123"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"newsecret123"`
}

// ChangePasswordRequest changes the password of a signed-in user.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72" example:"newsecret123"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"newsecret123"`
}

// UpdateProfileRequest is the payload for self-service profile edits.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	FirstName     *string `json:"firstName" binding:"omitempty,min=1,max=50" example:"Ada"`
	LastName      *string `json:"lastName" binding:"omitempty,min=1,max=50" example:"Byron"`
	DateOfBirth   *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"1990-12-10"`
	ContactNumber *string `json:"contactNumber" binding:"omitempty,max=20" example:"+628123456789"`
	About         *string `json:"about" binding:"omitempty,max=500"`
	Gender        *string `json:"gender" binding:"omitempty,oneof=male female other" example:"female"`
}

// UpdateRoleRequest is the admin override for a user's role.
type UpdateRoleRequest struct {
	UserID string `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
	Role   string `json:"role" binding:"required,oneof=student instructor admin" example:"instructor"`
}

// UserListResponse is a page of users.
type UserListResponse struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// EnrolledCourse is a course as seen from a student's dashboard.
type EnrolledCourse struct {
	Course             Course  `json:"course"`
	TotalDuration      string  `json:"totalDuration" example:"1:45"`
	ProgressPercentage float64 `json:"progressPercentage" example:"50"`
}
