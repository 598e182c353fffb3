package book

import "time"

// Book is the domain entity. Every book is owned by exactly one author,
// referenced through AuthorID.
type Book struct {
	ID        int        `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"` // required, max 200 chars
	Year      *int       `json:"year" db:"year"`
	ISBN      *string    `json:"isbn" db:"isbn"` // optional, max 20 chars, unique
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	AuthorID  int        `json:"author_id" db:"author_id"`
}

const (
	MaxTitleLength = 200
	MaxISBNLength  = 20
)

// SearchFilter holds the composable search criteria: a case-insensitive
// title substring and an exact author id. Both filters AND together;
// with neither set, everything matches.
type SearchFilter struct {
	Title    string
	AuthorID *int
}
