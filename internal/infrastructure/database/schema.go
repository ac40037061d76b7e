package database

// Ba collection độc lập, không có foreign key
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS images (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url   TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		comment      TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS images (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url   TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		comment      TEXT NOT NULL,
		created_at   INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
}
