package storage

import (
	"context"
	"fmt"

	"gallery-backend/internal/config"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage upload lên Google Cloud Storage
// Credentials lấy từ Application Default Credentials
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

func NewGCSStorage(ctx context.Context, cfg config.GCSConfig) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &GCSStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectName := "uploads/" + key

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write gcs object: %w", err)
	}
	// Object chỉ tồn tại sau khi Close thành công
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload to gcs: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
