// Package media turns uploaded files into durable object storage URLs.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/storage"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks coursehub/internal/media Resolver

// Upload folders.
const (
	FolderThumbnails = "thumbnails"
	FolderVideos     = "videos"
	FolderAvatars    = "avatars"
)

// Asset is an uploaded file. DurationSeconds is zero for images and for
// videos whose container could not be probed.
type Asset struct {
	URL             string  `json:"url"`
	Key             string  `json:"key"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Resolver uploads course media.
type Resolver interface {
	// UploadImage re-encodes an image as WebP and stores it under folder.
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*Asset, error)
	// UploadVideo stores a video under folder and probes its duration.
	UploadVideo(ctx context.Context, file *multipart.FileHeader, folder string) (*Asset, error)
	// Remove deletes a previously uploaded asset by its URL.
	Remove(ctx context.Context, url string) error
}

var _ Resolver = (*StorageResolver)(nil)

// StorageResolver implements Resolver on top of object storage.
type StorageResolver struct {
	store   storage.Storage
	images  ImageOptions
	newUUID func() string
}

// NewResolver creates a resolver backed by store.
func NewResolver(store storage.Storage, images ImageOptions) *StorageResolver {
	return &StorageResolver{
		store:   store,
		images:  images.withDefaults(),
		newUUID: func() string { return uuid.NewString() },
	}
}

// UploadImage decodes the file, fits it into the configured bounds and
// uploads the WebP result.
func (r *StorageResolver) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*Asset, error) {
	if file == nil {
		return nil, apperrors.ErrThumbnailRequired
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	encoded, err := r.images.Convert(raw)
	if err != nil {
		return nil, err
	}

	key := r.objectKey(folder, ".webp")
	if err := r.store.PutObject(ctx, key, bytes.NewReader(encoded), int64(len(encoded)), "image/webp"); err != nil {
		return nil, apperrors.Upstream("upload image", err)
	}

	return &Asset{URL: r.store.PublicURL(key), Key: key}, nil
}

// UploadVideo stores an MP4 family video as-is.
func (r *StorageResolver) UploadVideo(ctx context.Context, file *multipart.FileHeader, folder string) (*Asset, error) {
	if file == nil {
		return nil, apperrors.ErrVideoRequired
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	contentType, ok := videoTypes[ext]
	if !ok {
		return nil, apperrors.ErrUnsupportedMediaType
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	defer src.Close()

	duration, err := ProbeDuration(src)
	if err != nil {
		log.Printf("Could not probe duration of %s: %v", file.Filename, err)
		duration = 0
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind video: %w", err)
	}

	key := r.objectKey(folder, ext)
	if err := r.store.PutObject(ctx, key, src, file.Size, contentType); err != nil {
		return nil, apperrors.Upstream("upload video", err)
	}

	return &Asset{URL: r.store.PublicURL(key), Key: key, DurationSeconds: duration}, nil
}

// Remove deletes the object behind url. URLs not served by this bucket are
// ignored.
func (r *StorageResolver) Remove(ctx context.Context, url string) error {
	key, ok := r.store.KeyFromURL(url)
	if !ok {
		return nil
	}
	if err := r.store.DeleteObject(ctx, key); err != nil {
		return apperrors.Upstream("delete media", err)
	}
	return nil
}

func (r *StorageResolver) objectKey(folder, ext string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), r.newUUID(), ext)
}

var videoTypes = map[string]string{
	".mp4": "video/mp4",
	".m4v": "video/x-m4v",
	".mov": "video/quicktime",
}

// sniff returns the detected MIME type of the first bytes of data.
func sniff(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
