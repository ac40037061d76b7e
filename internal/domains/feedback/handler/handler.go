package handler

import (
	"net/http"

	"gallery-backend/internal/domains/feedback/model"
	"gallery-backend/internal/domains/feedback/service"
	"gallery-backend/internal/shared/apperr"
	"gallery-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FeedbackHandler struct {
	feedbackService service.ServiceInterface
}

func NewFeedbackHandler(feedbackService service.ServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// Create submits feedback
// POST /feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req model.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid feedback payload")
		response.FromError(c, apperr.NewValidation(apperr.MsgMissingFields, nil))
		return
	}

	fb, err := h.feedbackService.CreateFeedback(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.WithMessage(c, http.StatusCreated, response.MsgFeedbackSent, "feedback", fb)
}

// List returns every feedback record
// GET /feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Collection(c, http.StatusOK, "feedbacks", feedbacks)
}
