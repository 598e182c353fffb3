package author

import "context"

// Repository defines data access for authors. Implementations resolve
// the Books relationship on reads by querying the books table in
// insertion order.
type Repository interface {
	// Create inserts a new author and returns it with the store-assigned id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns the author with its current book titles.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int) (*Author, error)

	// GetAll returns all authors, each with its book titles, in insertion order.
	GetAll(ctx context.Context) ([]Author, error)

	// Update persists all scalar fields of the author.
	// Errors: ErrAuthorNotFound.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author and all books it owns inside a single
	// transaction, so the cascade can never be observed half-applied.
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id int) error
}
