package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("Missing required fields", nil), http.StatusBadRequest},
		{"auth", NewAuth(), http.StatusBadRequest},
		{"upload", NewUpload(cause), http.StatusInternalServerError},
		{"internal", NewInternal(cause), http.StatusInternalServerError},
		{"wrapped auth", fmt.Errorf("login: %w", NewAuth()), http.StatusBadRequest},
		{"plain error", cause, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("cloudinary: 401")
	err := NewUpload(cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindUpload))
	assert.False(t, IsKind(err, KindInternal))
	assert.Equal(t, "Internal server error", err.Message)
}

func TestAs_UnknownErrorIsInternal(t *testing.T) {
	appErr := As(errors.New("boom"))

	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, CodeInternal, appErr.Code)
}
