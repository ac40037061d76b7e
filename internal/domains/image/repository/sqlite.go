package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gallery-backend/internal/domains/image/model"

	"github.com/google/uuid"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) ImageRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, img *model.Image) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO images (id, title, description, image_url, created_at) VALUES (?, ?, ?, ?, ?)",
		img.ID.String(), img.Title, img.Description, img.ImageURL, img.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]*model.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, description, image_url, created_at FROM images ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	images := make([]*model.Image, 0)
	for rows.Next() {
		var (
			img       model.Image
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &img.Title, &img.Description, &img.ImageURL, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		if img.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid image id %q: %w", id, err)
		}
		img.CreatedAt = time.Unix(0, createdAt).UTC()
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}

	return images, nil
}
