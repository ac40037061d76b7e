package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"gallery-backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage upload ảnh lên Cloudinary, ảnh luôn được lưu dạng png
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cfg config.CloudinaryConfig) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryStorage{
		client: client,
		folder: cfg.Folder,
	}, nil
}

// Upload dùng key (bỏ extension) làm public_id
func (s *CloudinaryStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	publicID := strings.TrimSuffix(key, path.Ext(key))

	resp, err := s.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
		Format:   "png",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no url for %s", publicID)
	}

	return resp.SecureURL, nil
}
