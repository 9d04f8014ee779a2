package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS3Client_PublicURL(t *testing.T) {
	s := &S3Client{publicBaseURL: "http://localhost:9000/coursehub"}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"simple key", "thumbnails/a.webp", "http://localhost:9000/coursehub/thumbnails/a.webp"},
		{"leading slash trimmed", "/videos/b.mp4", "http://localhost:9000/coursehub/videos/b.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.PublicURL(tt.key))
		})
	}
}

func TestS3Client_KeyFromURL(t *testing.T) {
	s := &S3Client{publicBaseURL: "https://cdn.example.com/media"}

	key, ok := s.KeyFromURL("https://cdn.example.com/media/videos/x.mp4")
	assert.True(t, ok)
	assert.Equal(t, "videos/x.mp4", key)

	_, ok = s.KeyFromURL("https://elsewhere.example.com/videos/x.mp4")
	assert.False(t, ok)
}
