package author

// Author is the domain entity. Books holds the titles of the books this
// author owns, resolved by a query at read time rather than maintained
// as an in-memory collection.
type Author struct {
	ID    int     `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"` // required, max 100 chars
	Bio   *string `json:"bio" db:"bio"`   // optional, max 200 chars
	City  *string `json:"city" db:"city"` // optional, max 100 chars
	Books []string
}

const (
	MaxNameLength = 100
	MaxBioLength  = 200
	MaxCityLength = 100
)
