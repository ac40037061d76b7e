package service

import (
	"context"

	"gallery-backend/internal/domains/feedback/model"
)

type ServiceInterface interface {
	CreateFeedback(ctx context.Context, req model.CreateFeedbackRequest) (*model.Feedback, error)
	ListFeedback(ctx context.Context) ([]*model.Feedback, error)
}
