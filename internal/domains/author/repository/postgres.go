package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/author"
	"library-api/pkg/database"
)

// postgresRepository implements author.Repository on top of a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, bio, city)
        VALUES ($1, $2, $3)
        RETURNING id, name, bio, city
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Bio, a.City).Scan(
		&created.ID,
		&created.Name,
		&created.Bio,
		&created.City,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	created.Books = []string{}
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*author.Author, error) {
	query := `SELECT id, name, bio, city FROM authors WHERE id = $1`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Bio, &a.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	books, err := r.bookTitles(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Books = books

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `SELECT id, name, bio, city FROM authors ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.City); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	for i := range authors {
		books, err := r.bookTitles(ctx, authors[i].ID)
		if err != nil {
			return nil, err
		}
		authors[i].Books = books
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, bio = $2, city = $3
        WHERE id = $4
        RETURNING id, name, bio, city
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Bio, a.City, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Bio,
		&updated.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	books, err := r.bookTitles(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	updated.Books = books

	return &updated, nil
}

// Delete removes the author and every book it owns in one transaction.
// The two deletes commit or roll back together, so no orphaned books and
// no half-applied cascade can ever be observed.
func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return deleteAuthorCascade(ctx, tx, id)
	})
}

// execer is the subset of pgx.Tx the cascade needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// deleteAuthorCascade removes the author's books before the author row.
// Both statements run on the caller's transaction; a failed or missing
// author leaves the books untouched once the transaction rolls back.
func deleteAuthorCascade(ctx context.Context, tx execer, id int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author's books: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// bookTitles resolves the Author->Books relationship: the titles of all
// books owned by the author, in insertion order.
func (r *postgresRepository) bookTitles(ctx context.Context, authorID int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT title FROM books WHERE author_id = $1 ORDER BY id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author's books: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan book title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book titles: %w", err)
	}

	return titles, nil
}
