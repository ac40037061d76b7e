package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteDB là store nhúng cho local development và tests
type SQLiteDB struct {
	DB  *sql.DB
	dsn string
}

// OpenSQLite mở database theo DSN (file path hoặc ":memory:")
func OpenSQLite(dsn string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// SQLite chỉ cho một writer; ":memory:" còn là một DB riêng cho mỗi connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	log.Printf("[DATABASE] SQLite opened (%s)", dsn)
	return &SQLiteDB{DB: db, dsn: dsn}, nil
}

func (s *SQLiteDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range sqliteSchema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteDB) HealthCheck(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("sqlite is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteDB) Close() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	return err
}
