package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "coursehub/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, map[string]string{"message": "hello"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	Created(c, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		send   func(c *gin.Context)
		status int
		msg    string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, "bad"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "who") }, http.StatusUnauthorized, "who"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden, "no"},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, "gone"},
		{"conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict, "dup"},
		{"too many", func(c *gin.Context) { TooManyRequests(c, "slow down") }, http.StatusTooManyRequests, "slow down"},
		{"internal", func(c *gin.Context) { InternalError(c) }, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Error)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", apperrors.Validation("title is required"), http.StatusBadRequest, "title is required"},
		{"not found", apperrors.ErrCourseNotFound, http.StatusNotFound, "course not found"},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrSectionNotFound), http.StatusNotFound, "section not found"},
		{"conflict standardised on 409", apperrors.ErrAlreadyEnrolled, http.StatusConflict, "student is already enrolled"},
		{"unauthorized", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "you are not allowed to perform this action"},
		{"upstream", apperrors.Upstream("media upload", errors.New("s3 down")), http.StatusInternalServerError, "media upload failed"},
		{"internal hides detail", errors.New("mongo: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Error)
		})
	}
}
