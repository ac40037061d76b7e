package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/infrastructure/database"

	"github.com/google/uuid"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) AdminRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var (
		a         model.Admin
		id        string
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password, created_at FROM admins WHERE username = ?", username,
	).Scan(&id, &a.Username, &a.Password, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	if a.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid admin id %q: %w", id, err)
	}
	a.CreatedAt = time.Unix(0, createdAt).UTC()
	return &a, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *model.Admin) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO admins (id, username, password, created_at) VALUES (?, ?, ?, ?)",
		a.ID.String(), a.Username, a.Password, a.CreatedAt.UnixNano(),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrAdminAlreadyExists
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}
