package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/domains/admin/repository"
	"gallery-backend/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) ServiceInterface {
	return &adminService{repo: repo}
}

// EnsureDefaultAdmin - chạy trước khi server nhận request
// Lỗi trả về là lỗi startup
func (s *adminService) EnsureDefaultAdmin(ctx context.Context) error {
	existing, err := s.repo.FindByUsername(ctx, model.DefaultUsername)
	if err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if existing != nil {
		log.Info().Str("username", model.DefaultUsername).Msg("Admin already exists. Skipping creation.")
		return nil
	}

	admin := &model.Admin{
		ID:        uuid.New(),
		Username:  model.DefaultUsername,
		Password:  model.DefaultPassword,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		// Instance khác vừa tạo xong, unique constraint giữ đúng một record
		if errors.Is(err, model.ErrAdminAlreadyExists) {
			log.Info().Str("username", model.DefaultUsername).Msg("Admin already exists. Skipping creation.")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	log.Info().Str("username", model.DefaultUsername).Msg("Admin created successfully")
	return nil
}

func (s *adminService) Login(ctx context.Context, req model.LoginRequest) error {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return apperr.NewValidation(apperr.MsgCredentialsRequired, err)
	}

	// 2. FIND ADMIN
	admin, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return apperr.NewInternal(err)
	}

	// 3. COMPARE PASSWORD (byte-equal, case-sensitive)
	// Username sai và password sai trả về cùng một lỗi
	if admin == nil || subtle.ConstantTimeCompare([]byte(admin.Password), []byte(req.Password)) != 1 {
		return apperr.NewAuth()
	}

	return nil
}
