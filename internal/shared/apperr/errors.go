package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind phân loại lỗi để map sang HTTP status
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindUpload
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindUpload:
		return "upload"
	default:
		return "internal"
	}
}

// Messages trả về client
const (
	MsgMissingFields       = "Missing required fields"
	MsgCredentialsRequired = "Username and password are required"
	MsgInvalidCredentials  = "Invalid username or password"
	MsgInternal            = "Internal server error"
)

// Error codes
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUploadFailed       = "UPLOAD_FAILED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError là error chung của các domain
type AppError struct {
	Kind    Kind
	Code    string
	Message string      // message trả về client
	Details interface{} // chỉ dùng cho validation
	Err     error       // underlying error, không bao giờ trả về client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewValidation(message string, details interface{}) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    CodeMissingFields,
		Message: message,
		Details: details,
	}
}

// NewAuth không nói rõ username hay password sai
func NewAuth() *AppError {
	return &AppError{
		Kind:    KindAuth,
		Code:    CodeInvalidCredentials,
		Message: MsgInvalidCredentials,
	}
}

func NewUpload(err error) *AppError {
	return &AppError{
		Kind:    KindUpload,
		Code:    CodeUploadFailed,
		Message: MsgInternal,
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    CodeInternal,
		Message: MsgInternal,
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// As trả về AppError trong chain; lỗi lạ được coi là internal
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus map error → HTTP status code
// Auth trả 400 (không phải 401) giống validation
func HTTPStatus(err error) int {
	switch As(err).Kind {
	case KindValidation, KindAuth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
