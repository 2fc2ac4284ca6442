// Package clipboard supplies the clipboard text the action resolver works
// with. A read failure is treated as an empty clipboard.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultMaxLength caps how large a clipboard payload is still considered a
// plausible repository reference.
const DefaultMaxLength = 200

// Read returns the current clipboard text, or empty on any read failure.
func Read() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// Sanitize trims a clipboard payload and rejects anything that cannot be a
// repository reference: multi-line content or text over maxLen bytes.
// Returns empty for rejected payloads. A maxLen of zero applies
// DefaultMaxLength.
func Sanitize(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxLen {
		return ""
	}
	if strings.ContainsAny(text, "\n\r\t") {
		return ""
	}
	return text
}

// Candidate reads the clipboard and sanitizes the payload in one step.
func Candidate(maxLen int) string {
	return Sanitize(Read(), maxLen)
}
