package service

import (
	"context"

	"gallery-backend/internal/domains/image/model"
)

type ServiceInterface interface {
	// CreateImage validates the form, uploads the file and persists the record
	CreateImage(ctx context.Context, req model.CreateImageRequest) (*model.Image, error)

	// ListImages returns every stored record
	ListImages(ctx context.Context) ([]*model.Image, error)
}
