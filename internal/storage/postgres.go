package storage

import (
	"context"
	"database/sql"
)

var postgresDialect = dialect{
	name: "postgres",
	schema: `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at BIGINT NOT NULL
		);`,
	get:    "SELECT value FROM kv WHERE key = $1",
	upsert: "INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
	delete: "DELETE FROM kv WHERE key = $1",
}

// NewPostgres uses an already opened database (see pkg/postgres). The caller
// keeps ownership of db.
func NewPostgres(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	return newSQLStore(ctx, db, postgresDialect, false)
}
