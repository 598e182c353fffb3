package book

import "context"

// Repository defines data access for books.
type Repository interface {
	// Create inserts a new book and returns it with the store-assigned
	// id and creation timestamp.
	// Errors: ErrDuplicateISBN, ErrAuthorNotFound (foreign key).
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns one book. Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id int) (*Book, error)

	// GetAll returns all books in insertion order.
	GetAll(ctx context.Context) ([]Book, error)

	// Update persists all scalar fields of the book.
	// Errors: ErrBookNotFound, ErrDuplicateISBN, ErrAuthorNotFound.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes one book. Errors: ErrBookNotFound.
	Delete(ctx context.Context, id int) error

	// Search returns the books matching the filter in insertion order.
	Search(ctx context.Context, filter SearchFilter) ([]Book, error)

	// AuthorExists reports whether an author id references an existing
	// author, for referential checks before insert or reassignment.
	AuthorExists(ctx context.Context, authorID int) (bool, error)
}
