package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"gallery-backend/internal/domains/image/model"
	"gallery-backend/internal/domains/image/repository"
	"gallery-backend/internal/infrastructure/storage"
	"gallery-backend/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type imageService struct {
	repo     repository.ImageRepository
	uploader storage.Uploader
	now      func() time.Time
}

func NewImageService(repo repository.ImageRepository, uploader storage.Uploader) ServiceInterface {
	return &imageService{
		repo:     repo,
		uploader: uploader,
		now:      time.Now,
	}
}

// CreateImage: validate → upload → persist
// Upload lỗi thì không ghi gì vào store, không retry
func (s *imageService) CreateImage(ctx context.Context, req model.CreateImageRequest) (*model.Image, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, apperr.NewValidation(apperr.MsgMissingFields, err)
	}

	// 2. READ FILE
	data, contentType, err := readFile(req.File)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}

	// 3. UPLOAD TO MEDIA HOST
	now := s.now()
	key := storage.ObjectKey(now, req.File.Filename)

	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, apperr.NewUpload(fmt.Errorf("upload %s: %w", key, err))
	}

	// 4. PERSIST RECORD
	img := &model.Image{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    url,
		CreatedAt:   now.UTC(),
	}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, apperr.NewInternal(err)
	}

	log.Info().
		Str("image_id", img.ID.String()).
		Str("key", key).
		Int("size", len(data)).
		Msg("Image uploaded")

	return img, nil
}

func (s *imageService) ListImages(ctx context.Context) ([]*model.Image, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
