package clipboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain url", "git@github.com:alice/tools.git", "git@github.com:alice/tools.git"},
		{"surrounding whitespace", "  https://github.com/bob/app \n", "https://github.com/bob/app"},
		{"empty", "", ""},
		{"only whitespace", "   \n", ""},
		{"multi-line", "https://github.com/bob/app\nsecond line", ""},
		{"embedded tab", "a\tb", ""},
		{"too long", strings.Repeat("x", DefaultMaxLength+1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input, 0))
		})
	}
}

func TestSanitizeCustomLimit(t *testing.T) {
	assert.Equal(t, "", Sanitize(strings.Repeat("x", 11), 10))
	assert.Equal(t, strings.Repeat("x", 10), Sanitize(strings.Repeat("x", 10), 10))
}
