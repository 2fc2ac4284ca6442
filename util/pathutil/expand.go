package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand expands home directory (~) and environment variables in a path.
// It returns an absolute path.
func Expand(path string) (string, error) {
	// 1. Expand home directory character '~'.
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}

	// 2. Expand environment variables.
	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}
