package book

import "context"

// Service defines the business logic operations for the book domain.
type Service interface {
	// Create validates the request, verifies the owning author exists,
	// and inserts a new book.
	// Errors: ErrFieldsRequired, ErrAuthorNotFound, ErrDuplicateISBN.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID retrieves one book.
	// Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id int) (*Book, error)

	// GetAll retrieves every book in insertion order.
	GetAll(ctx context.Context) ([]Book, error)

	// Update applies a partial update; a supplied author_id must
	// reference an existing author.
	// Errors: ErrBookNotFound, ErrAuthorNotFound, ErrDuplicateISBN,
	// validation errors.
	Update(ctx context.Context, id int, req *UpdateBookRequest) (*Book, error)

	// Delete removes one book.
	// Errors: ErrBookNotFound.
	Delete(ctx context.Context, id int) error

	// Search returns the books matching the filter. The title filter is
	// a case-insensitive substring match, the author filter an exact id
	// match; both must hold when both are given.
	Search(ctx context.Context, filter SearchFilter) ([]Book, error)
}
