package repository

import (
	"context"

	"gallery-backend/internal/domains/admin/model"
)

type AdminRepository interface {
	// FindByUsername returns (nil, nil) when no admin has that username
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Create returns model.ErrAdminAlreadyExists on a username conflict
	Create(ctx context.Context, admin *model.Admin) error
}
