package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book"
)

// postgresRepository implements book.Repository on top of a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, year, isbn, created_at, author_id`

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.Year, &b.ISBN, &b.CreatedAt, &b.AuthorID)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, year, isbn, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + bookColumns

	var created book.Book
	err := scanBook(r.pool.QueryRow(ctx, query, b.Title, b.Year, b.ISBN, b.AuthorID), &created)
	if err != nil {
		if domainErr := translateConstraint(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b book.Book
	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, year = $2, isbn = $3, author_id = $4
        WHERE id = $5
        RETURNING ` + bookColumns

	var updated book.Book
	err := scanBook(r.pool.QueryRow(ctx, query, b.Title, b.Year, b.ISBN, b.AuthorID, b.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		if domainErr := translateConstraint(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Search composes the optional filters with AND. The title pattern
// arrives already wildcard-escaped from the service layer.
func (r *postgresRepository) Search(ctx context.Context, filter book.SearchFilter) ([]book.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + bookColumns + ` FROM books WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Title+"%")
		argPos++
	}

	if filter.AuthorID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func collectBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}
	return books, nil
}

// translateConstraint maps PostgreSQL constraint violations onto domain
// errors: the isbn unique index and the author foreign key.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		if strings.Contains(pgErr.ConstraintName, "isbn") {
			return book.ErrDuplicateISBN
		}
	case "23503": // foreign_key_violation
		return book.ErrAuthorNotFound
	}

	return nil
}
