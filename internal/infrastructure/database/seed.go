package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-api/pkg/logger"
)

type seedAuthor struct {
	name string
	bio  string
	city string
	book seedBook
}

type seedBook struct {
	title string
	year  int
	isbn  string
}

var sampleAuthors = []seedAuthor{
	{
		name: "Eric Matthes",
		bio:  "Python Expert",
		city: "Chicago",
		book: seedBook{title: "Python Crash Course", year: 2019, isbn: "978-1593279288"},
	},
	{
		name: "Miguel Grinberg",
		bio:  "Flask Guru",
		city: "Dublin",
		book: seedBook{title: "Flask Web Development", year: 2018, isbn: "978-1491991732"},
	},
}

// Seed inserts the sample authors and books, one book per author, on
// first startup. It is a no-op once the authors table has any rows.
// The whole seed runs in a single transaction so a partially seeded
// store can never be observed.
func (db *PostgresDB) Seed(ctx context.Context) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count authors: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, a := range sampleAuthors {
		var authorID int
		err := tx.QueryRow(ctx,
			`INSERT INTO authors (name, bio, city) VALUES ($1, $2, $3) RETURNING id`,
			a.name, a.bio, a.city,
		).Scan(&authorID)
		if err != nil {
			return fmt.Errorf("failed to seed author %q: %w", a.name, err)
		}

		if err := seedBookRow(ctx, tx, authorID, a.book); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info("database seeded with sample authors and books", map[string]interface{}{
		"authors": len(sampleAuthors),
	})
	return nil
}

func seedBookRow(ctx context.Context, tx pgx.Tx, authorID int, b seedBook) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO books (title, year, isbn, author_id) VALUES ($1, $2, $3, $4)`,
		b.title, b.year, b.isbn, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to seed book %q: %w", b.title, err)
	}
	return nil
}
