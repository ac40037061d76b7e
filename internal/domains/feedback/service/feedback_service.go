package service

import (
	"context"
	"time"

	"gallery-backend/internal/domains/feedback/model"
	"gallery-backend/internal/domains/feedback/repository"
	"gallery-backend/internal/shared/apperr"
	"gallery-backend/pkg/logger"

	"github.com/google/uuid"
)

type feedbackService struct {
	repo repository.FeedbackRepository
	now  func() time.Time
}

func NewFeedbackService(repo repository.FeedbackRepository) ServiceInterface {
	return &feedbackService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req model.CreateFeedbackRequest) (*model.Feedback, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.NewValidation(apperr.MsgMissingFields, err)
	}

	fb := &model.Feedback{
		ID:          uuid.New(),
		Name:        req.Name.String(),
		Email:       req.Email.String(),
		PhoneNumber: req.PhoneNumber.String(),
		Comment:     req.Comment.String(),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, apperr.NewInternal(err)
	}

	logger.Info("Feedback submitted", map[string]interface{}{
		"feedback_id": fb.ID.String(),
	})

	return fb, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.NewInternal(err)
	}
	return feedbacks, nil
}
