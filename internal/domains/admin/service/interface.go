package service

import (
	"context"

	"gallery-backend/internal/domains/admin/model"
)

type ServiceInterface interface {
	// EnsureDefaultAdmin creates the bootstrap admin if it is missing.
	// Safe to call any number of times.
	EnsureDefaultAdmin(ctx context.Context) error

	// Login checks credentials only; nothing is issued on success.
	Login(ctx context.Context, req model.LoginRequest) error
}
