// Package scan discovers organized clones under the base directory. The walk
// covers exactly two levels (owner, then repo); a repo-level directory counts
// as a project only when it carries a version-control marker at its root.
package scan

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/logging"
	"github.com/grovetools/glon/util/pathutil"
)

// marker is the version-control metadata directory that qualifies a
// directory as a project.
const marker = ".git"

// Project is one discovered clone. Entries are created fresh on every scan
// and never cached across invocations.
type Project struct {
	Owner        string    `json:"owner"`
	Repo         string    `json:"repo"`
	Path         string    `json:"path"`
	LastModified time.Time `json:"last_modified"`
}

// FS is the minimal filesystem surface the scanner needs. Production code
// uses the real filesystem; tests swap in a fake so no clones are required
// on disk.
type FS interface {
	// ListDirs returns the names of the immediate subdirectories of path.
	ListDirs(path string) ([]string, error)

	// HasMarker reports whether path carries a version-control marker at its root.
	HasMarker(path string) bool

	// LastModified returns the newest modification time among the entries
	// directly inside path.
	LastModified(path string) (time.Time, error)
}

type osFS struct{}

func (osFS) ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

func (osFS) HasMarker(path string) bool {
	info, err := os.Stat(filepath.Join(path, marker))
	return err == nil && info.IsDir()
}

// LastModified reflects actual development activity rather than
// directory-creation time: it takes the newest mtime among the project
// root's direct entries, falling back to the root itself.
func (osFS) LastModified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	entries, err := os.ReadDir(path)
	if err != nil || len(entries) == 0 {
		return info.ModTime(), nil
	}

	var newest time.Time
	for _, entry := range entries {
		entryInfo, err := entry.Info()
		if err != nil {
			continue
		}
		if entryInfo.ModTime().After(newest) {
			newest = entryInfo.ModTime()
		}
	}
	if newest.IsZero() {
		newest = info.ModTime()
	}
	return newest, nil
}

// Scanner walks the organized directory structure. It is synchronous and
// single-pass; a transient read error on one entry skips that entry rather
// than failing the scan.
type Scanner struct {
	fs     FS
	logger *logrus.Entry
}

// NewScanner creates a scanner backed by the real filesystem.
func NewScanner() *Scanner {
	return NewScannerWithFS(osFS{})
}

// NewScannerWithFS creates a scanner with a custom filesystem, for tests.
func NewScannerWithFS(fs FS) *Scanner {
	return &Scanner{
		fs:     fs,
		logger: logging.NewLogger("scanner"),
	}
}

// Scan returns every project found directly under base/owner/repo. An
// unreadable base directory is a reported error; everything below it
// degrades to skipped entries.
func (s *Scanner) Scan(base string) ([]Project, error) {
	expanded, err := pathutil.Expand(base)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to expand base path")
	}

	owners, err := s.fs.ListDirs(expanded)
	if err != nil {
		return nil, errors.BaseUnreadable(expanded, err)
	}

	var projects []Project
	for _, owner := range owners {
		ownerPath := filepath.Join(expanded, owner)

		repos, err := s.fs.ListDirs(ownerPath)
		if err != nil {
			s.logger.WithError(err).WithField("path", ownerPath).Debug("Skipping unreadable owner directory")
			continue
		}

		for _, repo := range repos {
			repoPath := filepath.Join(ownerPath, repo)

			if !s.fs.HasMarker(repoPath) {
				continue
			}

			modified, err := s.fs.LastModified(repoPath)
			if err != nil {
				s.logger.WithError(err).WithField("path", repoPath).Debug("Skipping unreadable project")
				continue
			}

			projects = append(projects, Project{
				Owner:        owner,
				Repo:         repo,
				Path:         repoPath,
				LastModified: modified,
			})
		}
	}

	return projects, nil
}
