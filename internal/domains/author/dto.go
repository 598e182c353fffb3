package author

import (
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/types"
)

// CreateAuthorRequest - POST /api/authors
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
	City *string `json:"city,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.City, validation.Length(0, MaxCityLength)),
	)
}

// UpdateAuthorRequest - PUT /api/authors/:id
// Every field is optional: only keys present in the body are applied.
// An Optional distinguishes an omitted key from an explicit null, so a
// nullable field can be cleared without touching the others.
type UpdateAuthorRequest struct {
	Name types.Optional[string] `json:"name"`
	Bio  types.Optional[string] `json:"bio"`
	City types.Optional[string] `json:"city"`
}

func (r UpdateAuthorRequest) Validate() error {
	if r.Name.Set && (r.Name.Value == nil || *r.Name.Value == "") {
		return ErrNameRequired
	}
	// Length limits count runes, matching the create-path validation.
	if r.Name.Present() && utf8.RuneCountInString(*r.Name.Value) > MaxNameLength {
		return ErrNameTooLong
	}
	if r.Bio.Present() && utf8.RuneCountInString(*r.Bio.Value) > MaxBioLength {
		return ErrBioTooLong
	}
	if r.City.Present() && utf8.RuneCountInString(*r.City.Value) > MaxCityLength {
		return ErrCityTooLong
	}
	return nil
}

// AuthorResponse is the transmissible form: scalar fields plus the
// titles of the author's current books.
type AuthorResponse struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Bio   *string  `json:"bio"`
	City  *string  `json:"city"`
	Books []string `json:"books"`
}

// ToResponse converts the entity to its wire form. Books is always an
// array, never null.
func (a *Author) ToResponse() *AuthorResponse {
	books := a.Books
	if books == nil {
		books = []string{}
	}
	return &AuthorResponse{
		ID:    a.ID,
		Name:  a.Name,
		Bio:   a.Bio,
		City:  a.City,
		Books: books,
	}
}

// ToEntity converts the create request to an entity ready for insert.
func (req *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name: req.Name,
		Bio:  req.Bio,
		City: req.City,
	}
}

// ApplyToEntity mutates only the fields present in the request, leaving
// everything else at its stored value.
func (req *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if req.Name.Present() {
		a.Name = *req.Name.Value
	}
	if req.Bio.Set {
		a.Bio = req.Bio.Value
	}
	if req.City.Set {
		a.City = req.City.Value
	}
}
