// Package resolve turns raw input (an explicit argument, clipboard content,
// or nothing) into a single side-effect-free action intent. The intent is
// the only contract between decision logic and the collaborators that
// execute it.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/glon/logging"
	"github.com/grovetools/glon/pkg/ide"
	"github.com/grovetools/glon/pkg/layout"
	"github.com/grovetools/glon/pkg/refs"
	"github.com/grovetools/glon/pkg/timewin"
	"github.com/grovetools/glon/util/pathutil"
)

// IntentKind discriminates the resolved action.
type IntentKind int

const (
	// IntentNoAction means nothing should happen; Reason says why.
	IntentNoAction IntentKind = iota
	// IntentClone clones Ref into TargetPath.
	IntentClone
	// IntentOpen opens TargetPath in IDE.
	IntentOpen
	// IntentCloneThenOpen clones Ref into TargetPath and then opens it.
	// If the clone fails the open must not be attempted.
	IntentCloneThenOpen
	// IntentListProjects lists the projects inside Window.
	IntentListProjects
)

// String returns the intent kind as a short verb for logs and dry runs.
func (k IntentKind) String() string {
	switch k {
	case IntentClone:
		return "clone"
	case IntentOpen:
		return "open"
	case IntentCloneThenOpen:
		return "clone-then-open"
	case IntentListProjects:
		return "list"
	default:
		return "no-action"
	}
}

// Intent is a resolved decision, free of side effects.
type Intent struct {
	Kind       IntentKind      `json:"kind"`
	Ref        *refs.RemoteRef `json:"ref,omitempty"`
	TargetPath string          `json:"target_path,omitempty"`
	IDE        ide.IDE         `json:"ide,omitempty"`
	Window     timewin.Window  `json:"window,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

// Resolver decides what to do with grab and open inputs. It never reads the
// clipboard or touches the network itself; clipboard content arrives already
// materialized and only directory existence is consulted.
type Resolver struct {
	base      string
	ide       ide.IDE
	dirExists func(string) bool
	logger    *logrus.Entry
}

// New creates a resolver for the given base directory and IDE selection.
func New(base string, selected ide.IDE) *Resolver {
	return &Resolver{
		base:      base,
		ide:       selected,
		dirExists: dirExists,
		logger:    logging.NewLogger("resolve"),
	}
}

// WithDirExists overrides the directory existence check, for tests.
func (r *Resolver) WithDirExists(fn func(string) bool) *Resolver {
	r.dirExists = fn
	return r
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Grab decides what to do for the grab command. The explicit argument wins;
// the clipboard is consulted only when no argument is given. Only remote
// references trigger organization: local paths and unrecognized input are
// no-ops, not errors.
func (r *Resolver) Grab(arg, clip string) (Intent, error) {
	input := arg
	source := "argument"
	if input == "" {
		input = clip
		source = "clipboard"
	}

	if strings.TrimSpace(input) == "" {
		return Intent{
			Kind:   IntentNoAction,
			Reason: "no repository URL given; pass one as an argument or copy one to the clipboard",
		}, nil
	}

	result := refs.Classify(input)
	r.logger.WithFields(logrus.Fields{"source": source, "kind": result.Kind}).Debug("Classified grab input")

	switch result.Kind {
	case refs.KindRemote:
		target, err := layout.DerivePath(*result.Remote, r.base)
		if err != nil {
			return Intent{}, err
		}
		return Intent{
			Kind:       IntentClone,
			Ref:        result.Remote,
			TargetPath: target,
		}, nil

	case refs.KindLocalPath:
		return Intent{Kind: IntentNoAction, Reason: "already a local path"}, nil

	default:
		return Intent{
			Kind:   IntentNoAction,
			Reason: "input not recognized as a repository reference or path",
		}, nil
	}
}

// Open decides what to do for the open command. An explicit argument (bare
// owner/repo shorthand, a path, or a remote reference) resolves directly
// against the base directory; with no argument the clipboard drives the
// decision, and an unusable clipboard falls back to listing what exists.
func (r *Resolver) Open(arg, clip string) (Intent, error) {
	if strings.TrimSpace(arg) != "" {
		return r.openExplicit(arg)
	}
	return r.openFromClipboard(clip)
}

func (r *Resolver) openExplicit(arg string) (Intent, error) {
	path, err := r.resolveTarget(arg)
	if err != nil {
		return Intent{}, err
	}

	if !r.dirExists(path) {
		return Intent{Kind: IntentNoAction, Reason: "project not found"}, nil
	}
	return Intent{Kind: IntentOpen, TargetPath: path, IDE: r.ide}, nil
}

// resolveTarget maps an explicit open argument to a directory: remote
// references land on their derived location, paths expand as usual, and a
// bare owner/repo token resolves under the base directory.
func (r *Resolver) resolveTarget(arg string) (string, error) {
	arg = strings.TrimSpace(arg)

	result := refs.Classify(arg)
	switch result.Kind {
	case refs.KindRemote:
		return layout.DerivePath(*result.Remote, r.base)
	case refs.KindLocalPath:
		return pathutil.Expand(result.Path)
	}

	base, err := pathutil.Expand(r.base)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, arg), nil
}

func (r *Resolver) openFromClipboard(clip string) (Intent, error) {
	result := refs.Classify(clip)

	if result.Kind != refs.KindRemote {
		// Only remote references justify the clipboard-priority behavior;
		// anything else falls through to showing what exists.
		r.logger.Debug("Clipboard unusable for open, falling back to project listing")
		return Intent{Kind: IntentListProjects, Window: timewin.All()}, nil
	}

	target, err := layout.DerivePath(*result.Remote, r.base)
	if err != nil {
		return Intent{}, err
	}

	if r.dirExists(target) {
		return Intent{Kind: IntentOpen, TargetPath: target, IDE: r.ide}, nil
	}

	return Intent{
		Kind:       IntentCloneThenOpen,
		Ref:        result.Remote,
		TargetPath: target,
		IDE:        r.ide,
	}, nil
}
