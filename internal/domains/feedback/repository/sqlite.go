package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gallery-backend/internal/domains/feedback/model"

	"github.com/google/uuid"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) FeedbackRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, fb *model.Feedback) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO feedback (id, name, email, phone_number, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		fb.ID.String(), fb.Name, fb.Email, fb.PhoneNumber, fb.Comment, fb.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, email, phone_number, comment, created_at FROM feedback ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	feedbacks := make([]*model.Feedback, 0)
	for rows.Next() {
		var (
			fb        model.Feedback
			id        string
			createdAt int64
		)
		if err := rows.Scan(&id, &fb.Name, &fb.Email, &fb.PhoneNumber, &fb.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if fb.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid feedback id %q: %w", id, err)
		}
		fb.CreatedAt = time.Unix(0, createdAt).UTC()
		feedbacks = append(feedbacks, &fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}

	return feedbacks, nil
}
