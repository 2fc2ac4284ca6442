package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CreateProject creates an organized clone at base/owner/repo with a .git
// marker and pins its modification time.
func CreateProject(t *testing.T, base, owner, repo string, modified time.Time) string {
	t.Helper()

	path := filepath.Join(base, owner, repo)
	require.NoError(t, os.MkdirAll(filepath.Join(path, ".git"), 0755))

	readme := filepath.Join(path, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# "+repo+"\n"), 0600))

	require.NoError(t, os.Chtimes(readme, modified, modified))
	require.NoError(t, os.Chtimes(filepath.Join(path, ".git"), modified, modified))
	require.NoError(t, os.Chtimes(path, modified, modified))

	return path
}

// CreatePlainDir creates a directory at base/owner/name without a
// version-control marker, so a scan should skip it.
func CreatePlainDir(t *testing.T, base, owner, name string) string {
	t.Helper()

	path := filepath.Join(base, owner, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

// TouchFile writes a file inside dir and pins its modification time.
func TouchFile(t *testing.T, dir, name string, modified time.Time) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0600))
	require.NoError(t, os.Chtimes(path, modified, modified))
}
