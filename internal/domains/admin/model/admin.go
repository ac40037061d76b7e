package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Bootstrap account, tạo một lần lúc startup
// Password lưu plaintext để giữ nguyên hành vi login hiện tại
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

var ErrAdminAlreadyExists = errors.New("admin username already exists")

type Admin struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest - POST /admin/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}
