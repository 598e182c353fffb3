package utils

import "strings"

// EscapeLike escapes the characters PostgreSQL treats as pattern syntax
// in LIKE/ILIKE expressions, so user input always matches literally.
// The backslash must be escaped first.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
