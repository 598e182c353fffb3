package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "python crash course", "python crash course"},
		{"percent escaped", "100% effective", `100\% effective`},
		{"underscore escaped", "snake_case", `snake\_case`},
		{"backslash escaped first", `a\%b`, `a\\\%b`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLike(tt.input))
		})
	}
}
