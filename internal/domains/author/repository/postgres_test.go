package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author"
)

// fakeTx records every statement it executes and answers each one with
// a preloaded command tag or error.
type fakeTx struct {
	statements []string
	args       [][]any
	tags       []pgconn.CommandTag
	errs       []error
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	i := len(f.statements)
	f.statements = append(f.statements, sql)
	f.args = append(f.args, args)

	var tag pgconn.CommandTag
	if i < len(f.tags) {
		tag = f.tags[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return tag, err
}

func TestDeleteAuthorCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes books before the author on the same transaction", func(t *testing.T) {
		tx := &fakeTx{tags: []pgconn.CommandTag{
			pgconn.NewCommandTag("DELETE 2"),
			pgconn.NewCommandTag("DELETE 1"),
		}}

		err := deleteAuthorCascade(ctx, tx, 7)
		require.NoError(t, err)

		require.Len(t, tx.statements, 2)
		assert.Contains(t, tx.statements[0], "DELETE FROM books")
		assert.Contains(t, tx.statements[0], "author_id")
		assert.Contains(t, tx.statements[1], "DELETE FROM authors")
		assert.Equal(t, []any{7}, tx.args[0])
		assert.Equal(t, []any{7}, tx.args[1])
	})

	t.Run("missing author is not found even when no books matched", func(t *testing.T) {
		tx := &fakeTx{tags: []pgconn.CommandTag{
			pgconn.NewCommandTag("DELETE 0"),
			pgconn.NewCommandTag("DELETE 0"),
		}}

		err := deleteAuthorCascade(ctx, tx, 99)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("book delete failure stops before the author row", func(t *testing.T) {
		tx := &fakeTx{errs: []error{errors.New("connection reset")}}

		err := deleteAuthorCascade(ctx, tx, 7)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "author's books"))

		// The author statement must never run once the cascade failed.
		assert.Len(t, tx.statements, 1)
	})
}
