package response

import (
	"gallery-backend/internal/shared/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Messages dùng chung giữa các handler
const (
	MsgImageUploaded  = "Image uploaded successfully"
	MsgFeedbackSent   = "Feedback submitted successfully"
	MsgLoginSucceeded = "Login successful"
)

type ErrorBody struct {
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses

// Message trả về {"message": ...}
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// WithMessage trả về {"message": ..., key: data}
func WithMessage(c *gin.Context, statusCode int, message, key string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"message": message,
		key:       data,
	})
}

// Collection trả về {key: items}
func Collection(c *gin.Context, statusCode int, key string, items interface{}) {
	c.JSON(statusCode, gin.H{key: items})
}

// Error responses

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorBody{
		Message: message,
		Code:    code,
	})
}

// FromError log lỗi và map sang response
// Underlying error (SQL, provider) không bao giờ ra ngoài body
func FromError(c *gin.Context, err error) {
	appErr := apperr.As(err)
	status := apperr.HTTPStatus(appErr)

	event := log.Warn()
	if status >= 500 {
		event = log.Error()
	}
	event.
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("kind", appErr.Kind.String()).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")

	c.JSON(status, ErrorBody{
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
