// Package layout derives the canonical on-disk location of a clone:
// <base>/<owner>/<repo>.
package layout

import (
	"path/filepath"

	"github.com/grovetools/glon/pkg/refs"
	"github.com/grovetools/glon/util/pathutil"
)

// DerivePath returns the organized location for a remote reference under the
// given base directory. The base supports ~ and environment variables. The
// directory is not created here; that happens at clone time.
func DerivePath(ref refs.RemoteRef, base string) (string, error) {
	expanded, err := pathutil.Expand(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(expanded, ref.Owner, ref.Repo), nil
}
