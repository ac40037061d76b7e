package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"gallery-backend/internal/config"
)

// Uploader lưu binary ở media host và trả về URL public
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// NewUploader chọn provider theo MEDIA_PROVIDER
func NewUploader(ctx context.Context, cfg *config.Config) (Uploader, error) {
	switch cfg.Media.Provider {
	case config.MediaProviderCloudinary:
		return NewCloudinaryStorage(cfg.Cloudinary)
	case config.MediaProviderMinIO:
		return NewMinIOStorage(ctx, cfg.MinIO)
	case config.MediaProviderGCS:
		return NewGCSStorage(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unsupported media provider %q", cfg.Media.Provider)
	}
}

// ObjectKey tạo tên object dạng "<unix millis>-<original filename>"
func ObjectKey(now time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}
