package repository

import (
	"context"

	"gallery-backend/internal/domains/image/model"
)

// ImageRepository defines data access for image records
type ImageRepository interface {
	// Create persists one record; ID and CreatedAt are set by the caller
	Create(ctx context.Context, img *model.Image) error

	// List returns every record in insertion order, never nil
	List(ctx context.Context) ([]*model.Image, error)
}
