package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/glon/pkg/ide"
)

func newTestResolver(t *testing.T, existing ...string) *Resolver {
	t.Helper()

	exists := make(map[string]bool, len(existing))
	for _, p := range existing {
		exists[p] = true
	}

	return New("~/github", ide.Default).WithDirExists(func(path string) bool {
		return exists[path]
	})
}

func homePath(t *testing.T, parts ...string) string {
	t.Helper()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	return filepath.Join(append([]string{home}, parts...)...)
}

func TestGrabExplicitRemote(t *testing.T) {
	r := newTestResolver(t)

	intent, err := r.Grab("git@github.com:alice/tools.git", "")
	require.NoError(t, err)
	assert.Equal(t, IntentClone, intent.Kind)
	require.NotNil(t, intent.Ref)
	assert.Equal(t, "alice", intent.Ref.Owner)
	assert.Equal(t, "tools", intent.Ref.Repo)
	assert.Equal(t, homePath(t, "github", "alice", "tools"), intent.TargetPath)
}

func TestGrabClipboardFallback(t *testing.T) {
	r := newTestResolver(t)

	// Clipboard is consulted only when no argument is given.
	intent, err := r.Grab("", "https://github.com/bob/app")
	require.NoError(t, err)
	assert.Equal(t, IntentClone, intent.Kind)
	assert.Equal(t, "bob", intent.Ref.Owner)

	// An explicit argument wins over the clipboard.
	intent, err = r.Grab("git@github.com:alice/tools.git", "https://github.com/bob/app")
	require.NoError(t, err)
	assert.Equal(t, "alice", intent.Ref.Owner)
}

func TestGrabLocalPathIsNoOp(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver(t)

	intent, err := r.Grab(dir, "")
	require.NoError(t, err)
	assert.Equal(t, IntentNoAction, intent.Kind)
	assert.Equal(t, "already a local path", intent.Reason)
}

func TestGrabUnrecognized(t *testing.T) {
	r := newTestResolver(t)

	intent, err := r.Grab("hello", "")
	require.NoError(t, err)
	assert.Equal(t, IntentNoAction, intent.Kind)
	assert.Equal(t, "input not recognized as a repository reference or path", intent.Reason)
}

func TestGrabNothingAvailable(t *testing.T) {
	r := newTestResolver(t)

	intent, err := r.Grab("", "")
	require.NoError(t, err)
	assert.Equal(t, IntentNoAction, intent.Kind)
	assert.Contains(t, intent.Reason, "clipboard")
}

func TestOpenClipboardCloneThenOpen(t *testing.T) {
	// Clipboard holds a remote reference whose target does not exist yet.
	r := newTestResolver(t)

	intent, err := r.Open("", "git@github.com:alice/tools.git")
	require.NoError(t, err)
	assert.Equal(t, IntentCloneThenOpen, intent.Kind)
	require.NotNil(t, intent.Ref)
	assert.Equal(t, "github.com", intent.Ref.Host)
	assert.Equal(t, "alice", intent.Ref.Owner)
	assert.Equal(t, "tools", intent.Ref.Repo)
	assert.Equal(t, homePath(t, "github", "alice", "tools"), intent.TargetPath)
	assert.Equal(t, ide.Default, intent.IDE)
}

func TestOpenClipboardExistingClone(t *testing.T) {
	target := homePath(t, "github", "bob", "app")
	r := newTestResolver(t, target)

	intent, err := r.Open("", "https://github.com/bob/app")
	require.NoError(t, err)
	assert.Equal(t, IntentOpen, intent.Kind)
	assert.Equal(t, target, intent.TargetPath)
	assert.Equal(t, ide.Default, intent.IDE)
}

func TestOpenClipboardUnusableFallsBackToList(t *testing.T) {
	r := newTestResolver(t)

	for _, clip := range []string{"hello", "", "/home/me/stuff"} {
		intent, err := r.Open("", clip)
		require.NoError(t, err, "clipboard %q", clip)
		assert.Equal(t, IntentListProjects, intent.Kind, "clipboard %q", clip)
		assert.Equal(t, "all time", intent.Window.Label)
	}
}

func TestOpenExplicitShorthand(t *testing.T) {
	target := homePath(t, "github", "alice", "tools")
	r := newTestResolver(t, target)

	intent, err := r.Open("alice/tools", "ignored clipboard")
	require.NoError(t, err)
	assert.Equal(t, IntentOpen, intent.Kind)
	assert.Equal(t, target, intent.TargetPath)
}

func TestOpenExplicitAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver(t, dir)

	intent, err := r.Open(dir, "")
	require.NoError(t, err)
	assert.Equal(t, IntentOpen, intent.Kind)
	assert.Equal(t, dir, intent.TargetPath)
}

func TestOpenExplicitNotFound(t *testing.T) {
	r := newTestResolver(t)

	intent, err := r.Open("alice/missing", "")
	require.NoError(t, err)
	assert.Equal(t, IntentNoAction, intent.Kind)
	assert.Equal(t, "project not found", intent.Reason)
}

func TestOpenExplicitRemoteResolvesAgainstBase(t *testing.T) {
	target := homePath(t, "github", "alice", "tools")
	r := newTestResolver(t, target)

	intent, err := r.Open("git@github.com:alice/tools.git", "")
	require.NoError(t, err)
	assert.Equal(t, IntentOpen, intent.Kind)
	assert.Equal(t, target, intent.TargetPath)
}

func TestIntentKindString(t *testing.T) {
	assert.Equal(t, "clone", IntentClone.String())
	assert.Equal(t, "open", IntentOpen.String())
	assert.Equal(t, "clone-then-open", IntentCloneThenOpen.String())
	assert.Equal(t, "list", IntentListProjects.String())
	assert.Equal(t, "no-action", IntentNoAction.String())
}
