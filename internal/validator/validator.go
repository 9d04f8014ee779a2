// Package validator registers the custom binding tags used by request models.
package validator

import (
	"math"
	"reflect"

	"coursehub/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validateObjectID checks for a 24-character hex MongoDB id
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// validateCourseStatus checks for Draft or Published
func validateCourseStatus(fl validator.FieldLevel) bool {
	switch models.CourseStatus(fl.Field().String()) {
	case models.CourseDraft, models.CoursePublished:
		return true
	}
	return false
}

// validateAccountType checks for a role that may be chosen at signup
func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleStudent, models.RoleInstructor:
		return true
	}
	return false
}

// validateFinite rejects NaN and the infinities, which JSON cannot encode
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// Register adds the custom tags to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("objectid", validateObjectID)
	_ = v.RegisterValidation("coursestatus", validateCourseStatus)
	_ = v.RegisterValidation("accounttype", validateAccountType)
	_ = v.RegisterValidation("finite", validateFinite)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
