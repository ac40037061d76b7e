package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type Feedback struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateFeedbackRequest - POST /feedback
// Email và phone là text tự do, không check format
type CreateFeedbackRequest struct {
	Name        Text `json:"name"`
	Email       Text `json:"email"`
	PhoneNumber Text `json:"phoneNumber"`
	Comment     Text `json:"comment"`
}

func (r CreateFeedbackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.PhoneNumber, validation.Required.Error("phoneNumber is required")),
		validation.Field(&r.Comment, validation.Required.Error("comment is required")),
	)
}
