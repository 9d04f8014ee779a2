// Package response provides standard API response helpers.
package response

import (
	"log"
	"net/http"

	apperrors "coursehub/internal/errors"

	"github.com/gin-gonic/gin"
)

// Response is the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// FromError maps an application error to its HTTP status.
// Internal and upstream failures are logged and answered with a generic message.
func FromError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		BadRequest(c, apperrors.MessageOf(err))
	case apperrors.KindNotFound:
		NotFound(c, apperrors.MessageOf(err))
	case apperrors.KindConflict:
		Conflict(c, apperrors.MessageOf(err))
	case apperrors.KindUnauthorized:
		Unauthorized(c, apperrors.MessageOf(err))
	case apperrors.KindForbidden:
		Forbidden(c, apperrors.MessageOf(err))
	case apperrors.KindUpstream:
		log.Printf("%s %s: upstream failure: %v", c.Request.Method, c.FullPath(), err)
		Error(c, http.StatusInternalServerError, apperrors.MessageOf(err))
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		InternalError(c)
	}
}
