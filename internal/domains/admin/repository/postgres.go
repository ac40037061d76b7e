package repository

import (
	"context"
	"errors"
	"fmt"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) AdminRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `
		SELECT id, username, password, created_at
		FROM admins
		WHERE username = $1
	`
	var a model.Admin
	err := r.pool.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Admin) error {
	query := `
		INSERT INTO admins (id, username, password, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, a.ID, a.Username, a.Password, a.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrAdminAlreadyExists
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}
