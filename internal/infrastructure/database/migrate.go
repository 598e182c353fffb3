package database

import (
	"context"
	"fmt"
)

// Schema for the two entities. Books reference authors with a plain
// foreign key: the cascade on author delete is performed by an explicit
// transactional routine in the author repository, not by the database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id   SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		bio  VARCHAR(200),
		city VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id         SERIAL PRIMARY KEY,
		title      VARCHAR(200) NOT NULL,
		year       INTEGER,
		isbn       VARCHAR(20) UNIQUE,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		author_id  INTEGER NOT NULL REFERENCES authors(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
}

// Migrate applies the schema. Every statement is idempotent, so running
// it on each startup is safe.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
