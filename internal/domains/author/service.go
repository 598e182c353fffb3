package author

import "context"

// Service defines the business logic operations for the author domain.
type Service interface {
	// Create validates the request and inserts a new author.
	// Errors: ErrNameRequired and other validation errors.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves one author with its book titles.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int) (*Author, error)

	// GetAll retrieves every author in insertion order.
	GetAll(ctx context.Context) ([]Author, error)

	// Update applies a partial update: only fields present in the
	// request change, everything else keeps its stored value.
	// Errors: ErrAuthorNotFound, validation errors.
	Update(ctx context.Context, id int, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes the author and every book it owns as one unit of
	// work. Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id int) error
}
