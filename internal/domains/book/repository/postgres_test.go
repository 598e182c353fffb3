package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"library-api/internal/domains/book"
)

func TestTranslateConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "isbn unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"},
			want: book.ErrDuplicateISBN,
		},
		{
			name: "wrapped isbn unique violation",
			err:  fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"}),
			want: book.ErrDuplicateISBN,
		},
		{
			name: "unique violation on another constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "books_pkey"},
			want: nil,
		},
		{
			name: "author foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "books_author_id_fkey"},
			want: book.ErrAuthorNotFound,
		},
		{
			name: "unrelated postgres error",
			err:  &pgconn.PgError{Code: "42P01"},
			want: nil,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateConstraint(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
			} else {
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
