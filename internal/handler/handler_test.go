package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"coursehub/internal/middleware"
	"coursehub/internal/models"
	"coursehub/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

var (
	testStudent    = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleStudent}
	testInstructor = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleInstructor}
	testAdmin      = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
)

// asActor stands in for the auth middleware.
func asActor(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, actor.ID.Hex())
		c.Set(middleware.RoleKey, actor.Role)
		c.Next()
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// multipartBody encodes fields and, when fileField is set, a small file.
func multipartBody(t *testing.T, fields map[string][]string, fileField string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(name, v))
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, "upload.bin")
		require.NoError(t, err)
		_, err = part.Write([]byte("content"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
