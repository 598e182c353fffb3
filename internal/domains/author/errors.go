package author

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error messages double as the wire-level error strings, so they are
// phrased for API clients.
var (
	// Validation errors
	ErrNameRequired = errors.New("Name is required")
	ErrNameTooLong  = errors.New("Name exceeds maximum length")
	ErrBioTooLong   = errors.New("Bio exceeds maximum length")
	ErrCityTooLong  = errors.New("City exceeds maximum length")

	// Business rule errors
	ErrAuthorNotFound = errors.New("Author not found")
)

// ToHTTPStatus maps a domain error to the HTTP status the envelope is
// written with.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrBioTooLong),
		errors.Is(err, ErrCityTooLong):
		return http.StatusBadRequest
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
