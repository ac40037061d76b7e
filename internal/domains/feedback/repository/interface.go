package repository

import (
	"context"

	"gallery-backend/internal/domains/feedback/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error

	// List returns every record in insertion order, never nil
	List(ctx context.Context) ([]*model.Feedback, error)
}
