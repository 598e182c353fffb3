package book

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error messages double as the wire-level error strings.
var (
	// Validation errors
	ErrFieldsRequired   = errors.New("Title and author_id are required")
	ErrTitleRequired    = errors.New("Title is required")
	ErrTitleTooLong     = errors.New("Title exceeds maximum length")
	ErrAuthorIDRequired = errors.New("author_id is required")
	ErrISBNTooLong      = errors.New("Isbn exceeds maximum length")

	// Business rule errors
	ErrBookNotFound   = errors.New("Book not found")
	ErrAuthorNotFound = errors.New("Author not found")
	ErrDuplicateISBN  = errors.New("A book with this isbn already exists")
)

// ToHTTPStatus maps a domain error to the HTTP status the envelope is
// written with.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateISBN):
		return http.StatusConflict
	case errors.Is(err, ErrFieldsRequired),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrAuthorIDRequired),
		errors.Is(err, ErrISBNTooLong):
		return http.StatusBadRequest
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
