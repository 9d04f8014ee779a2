// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"coursehub/internal/middleware"
	"coursehub/internal/models"
	"coursehub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Multipart field names.
const (
	thumbnailField      = "thumbnailImage"
	videoField          = "video"
	displayPictureField = "displayPicture"
)

// requireActor returns the authenticated caller or answers 401.
func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
	}
	return actor, ok
}

// optionalFile returns the uploaded file, or nil when the field is absent.
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return file, err
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return n
}
