package storage

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks coursehub/internal/storage Storage

// Storage defines the object storage operations used for course media.
type Storage interface {
	// PutObject uploads an object under key.
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// DeleteObject removes the object stored under key.
	DeleteObject(ctx context.Context, key string) error
	// PublicURL returns the durable URL clients use to fetch key.
	PublicURL(key string) string
	// KeyFromURL reverses PublicURL, reporting false for foreign URLs.
	KeyFromURL(url string) (string, bool)
}

var _ Storage = (*S3Client)(nil)
