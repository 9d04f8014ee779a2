// Package storage stores course media in S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client uploads and deletes objects in a single bucket.
type S3Client struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Client creates a client for the given endpoint. publicBaseURL is the
// prefix prepended to object keys when building media URLs; when empty,
// path-style URLs on the endpoint itself are used.
func NewS3Client(endpoint, accessKey, secretKey, bucket string, useSSL bool, publicBaseURL string) *S3Client {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	endpointURL := scheme + "://" + endpoint

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		log.Fatalf("Failed to load S3 config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true
	})

	log.Printf("Connected to S3 at %s", endpointURL)

	if publicBaseURL == "" {
		publicBaseURL = endpointURL + "/" + bucket
	}

	return &S3Client{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// PutObject uploads body under key.
func (s *S3Client) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	_, err := s.client.PutObject(ctx, input)
	return err
}

// DeleteObject removes key from the bucket. Missing keys are not an error.
func (s *S3Client) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL joins the public base URL and key.
func (s *S3Client) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL reverses PublicURL. It reports false for URLs outside the bucket.
func (s *S3Client) KeyFromURL(url string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
