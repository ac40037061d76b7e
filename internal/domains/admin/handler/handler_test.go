package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/shared/apperr"
	"gallery-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{ loginErr error }

func (s stubService) EnsureDefaultAdmin(context.Context) error { return nil }
func (s stubService) Login(context.Context, model.LoginRequest) error {
	return s.loginErr
}

// captureLogs chuyển global logger sang buffer trong suốt test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = prev })
	return buf
}

func findLogLine(t *testing.T, buf *bytes.Buffer, msg string) map[string]interface{} {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if json.Unmarshal([]byte(line), &entry) == nil && entry["message"] == msg {
			return entry
		}
	}
	t.Fatalf("no %q log line in %s", msg, buf.String())
	return nil
}

func newLoginRouter(svc stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ClientIP())
	r.POST("/admin/login", NewAdminHandler(svc).Login)
	return r
}

func postLogin(r *gin.Engine, body, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_RejectedAttemptIsLoggedWithClientIP(t *testing.T) {
	tests := []struct {
		name      string
		ip        string
		isPrivate bool
	}{
		{"office network", "10.0.0.5", true},
		{"public address", "203.0.113.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			r := newLoginRouter(stubService{loginErr: apperr.NewAuth()})

			w := postLogin(r, `{"username":"admin","password":"wrong"}`, tt.ip)
			require.Equal(t, http.StatusBadRequest, w.Code)

			entry := findLogLine(t, buf, "Admin login rejected")
			assert.Equal(t, "admin", entry["username"])
			assert.Equal(t, tt.ip, entry["ip"])
			assert.Equal(t, tt.isPrivate, entry["private_ip"])
			assert.NotContains(t, buf.String(), "wrong")
		})
	}
}

func TestLogin_Success(t *testing.T) {
	r := newLoginRouter(stubService{})

	w := postLogin(r, `{"username":"admin","password":"admin"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Login successful"}`, w.Body.String())
}

func TestLogin_MalformedBody(t *testing.T) {
	buf := captureLogs(t)
	r := newLoginRouter(stubService{})

	w := postLogin(r, `{"username":`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperr.MsgCredentialsRequired, body.Message)
	assert.NotContains(t, buf.String(), "Admin login rejected")
}
