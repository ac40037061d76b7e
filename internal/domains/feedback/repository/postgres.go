package repository

import (
	"context"
	"fmt"

	"gallery-backend/internal/domains/feedback/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, fb *model.Feedback) error {
	query := `
		INSERT INTO feedback (id, name, email, phone_number, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, fb.ID, fb.Name, fb.Email, fb.PhoneNumber, fb.Comment, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	query := `
		SELECT id, name, email, phone_number, comment, created_at
		FROM feedback
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	feedbacks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Feedback, error) {
		var fb model.Feedback
		err := row.Scan(&fb.ID, &fb.Name, &fb.Email, &fb.PhoneNumber, &fb.Comment, &fb.CreatedAt)
		return &fb, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}
	if feedbacks == nil {
		feedbacks = make([]*model.Feedback, 0)
	}

	return feedbacks, nil
}
