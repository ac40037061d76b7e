package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_EnsureSchemaIsIdempotent(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.EnsureSchema(ctx))
	require.NoError(t, db.EnsureSchema(ctx))

	for _, table := range []string{"images", "feedback", "admins"} {
		var name string
		err := db.DB.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	assert.NoError(t, db.HealthCheck(ctx))
}

func TestSQLite_AdminUsernameIsUnique(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.EnsureSchema(ctx))

	insert := "INSERT INTO admins (id, username, password, created_at) VALUES (?, ?, ?, ?)"
	_, err = db.DB.ExecContext(ctx, insert, "a", "admin", "admin", 1)
	require.NoError(t, err)

	_, err = db.DB.ExecContext(ctx, insert, "b", "admin", "other", 2)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestSQLite_CloseTwice(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	assert.NoError(t, db.Close())
	assert.NoError(t, db.Close())
}

func TestPostgres_CloseWithoutConnect(t *testing.T) {
	db := NewPostgresDB(&DBConfig{URL: "postgresql://localhost/gallery"})

	assert.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
	assert.Error(t, db.EnsureSchema(context.Background()))
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsUniqueViolation(nil))
}
