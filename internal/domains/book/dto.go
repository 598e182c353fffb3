package book

import (
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/types"
)

// CreateBookRequest - POST /api/books
type CreateBookRequest struct {
	Title    string  `json:"title"`
	AuthorID int     `json:"author_id"`
	Year     *int    `json:"year,omitempty"`
	ISBN     *string `json:"isbn,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title and author_id are required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("Title and author_id are required"),
		),
		validation.Field(&r.ISBN, validation.Length(0, MaxISBNLength)),
	)
}

// UpdateBookRequest - PUT /api/books/:id
// Only keys present in the body are applied; author_id can be supplied
// to reassign the book to a different existing author.
type UpdateBookRequest struct {
	Title    types.Optional[string] `json:"title"`
	AuthorID types.Optional[int]    `json:"author_id"`
	Year     types.Optional[int]    `json:"year"`
	ISBN     types.Optional[string] `json:"isbn"`
}

func (r UpdateBookRequest) Validate() error {
	if r.Title.Set && (r.Title.Value == nil || *r.Title.Value == "") {
		return ErrTitleRequired
	}
	// Length limits count runes, matching the create-path validation.
	if r.Title.Present() && utf8.RuneCountInString(*r.Title.Value) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if r.AuthorID.Set && (r.AuthorID.Value == nil || *r.AuthorID.Value == 0) {
		return ErrAuthorIDRequired
	}
	if r.ISBN.Present() && utf8.RuneCountInString(*r.ISBN.Value) > MaxISBNLength {
		return ErrISBNTooLong
	}
	return nil
}

// BookResponse is the transmissible form, created_at rendered as
// RFC 3339 text or an explicit null when unset.
type BookResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	AuthorID  int     `json:"author_id"`
	Year      *int    `json:"year"`
	ISBN      *string `json:"isbn"`
	CreatedAt *string `json:"created_at"`
}

func (b *Book) ToResponse() *BookResponse {
	var createdAt *string
	if b.CreatedAt != nil {
		formatted := b.CreatedAt.UTC().Format(time.RFC3339)
		createdAt = &formatted
	}
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		Year:      b.Year,
		ISBN:      b.ISBN,
		CreatedAt: createdAt,
	}
}

// ToEntity converts the create request to an entity ready for insert.
// CreatedAt is left nil so the store fills in the creation time.
func (req *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		Year:     req.Year,
		ISBN:     req.ISBN,
	}
}

// ApplyToEntity mutates only the fields present in the request.
func (req *UpdateBookRequest) ApplyToEntity(b *Book) {
	if req.Title.Present() {
		b.Title = *req.Title.Value
	}
	if req.AuthorID.Present() {
		b.AuthorID = *req.AuthorID.Value
	}
	if req.Year.Set {
		b.Year = req.Year.Value
	}
	if req.ISBN.Set {
		b.ISBN = req.ISBN.Value
	}
}
