// Package refs classifies raw input strings (CLI arguments, clipboard
// payloads) as remote repository references, local filesystem paths, or
// neither. Classification never fails: unparseable input is a normal
// outcome, not an error.
package refs

import (
	"os"
	"regexp"
	"strings"

	"github.com/grovetools/glon/util/pathutil"
)

// Scheme identifies the transport of a remote reference.
type Scheme string

const (
	SchemeSSH   Scheme = "ssh"
	SchemeHTTPS Scheme = "https"
)

// Kind discriminates the classification result.
type Kind int

const (
	// KindUnrecognized means the input is neither a remote reference nor a path.
	KindUnrecognized Kind = iota
	// KindRemote means the input parsed as a remote repository reference.
	KindRemote
	// KindLocalPath means the input looks like a local filesystem path.
	KindLocalPath
)

// RemoteRef identifies a remote repository. Host, owner and repo are
// preserved verbatim from the input; remote hosts may be case-sensitive.
type RemoteRef struct {
	Host   string `json:"host"`
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Scheme Scheme `json:"scheme"`

	// URL is the original input string, kept so the clone executor can hand
	// it to git unchanged.
	URL string `json:"url"`
}

// Result is the outcome of classifying one input string.
type Result struct {
	Kind   Kind
	Remote *RemoteRef // set when Kind == KindRemote
	Path   string     // set when Kind == KindLocalPath; trimmed but not expanded
}

var (
	// SSH form: user@host:owner/repo[.git]
	sshPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@([^:/\s]+):([^/\s]+)/([^/\s]+?)(\.git)?$`)

	// HTTPS form: https://host/owner/repo[.git]
	httpsPattern = regexp.MustCompile(`^https://([^/\s]+)/([^/\s]+)/([^/\s]+?)(\.git)?$`)
)

// ParseRemote parses an SSH- or HTTPS-form remote repository reference.
// The trailing .git suffix is stripped from the repo name. Returns nil
// if the input is not a recognized remote form.
func ParseRemote(input string) *RemoteRef {
	input = strings.TrimSpace(input)

	if m := sshPattern.FindStringSubmatch(input); m != nil {
		return &RemoteRef{
			Host:   m[1],
			Owner:  m[2],
			Repo:   m[3],
			Scheme: SchemeSSH,
			URL:    input,
		}
	}

	if m := httpsPattern.FindStringSubmatch(input); m != nil {
		return &RemoteRef{
			Host:   m[1],
			Owner:  m[2],
			Repo:   m[3],
			Scheme: SchemeHTTPS,
			URL:    input,
		}
	}

	return nil
}

// Classify decides what an input string refers to. Remote syntax wins over
// path syntax; a non-remote input is accepted as a local path when it is
// absolute, home-relative, or its expansion exists on disk.
func Classify(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{Kind: KindUnrecognized}
	}

	if ref := ParseRemote(input); ref != nil {
		return Result{Kind: KindRemote, Remote: ref}
	}

	if strings.HasPrefix(input, "/") || input == "~" || strings.HasPrefix(input, "~/") {
		return Result{Kind: KindLocalPath, Path: input}
	}

	// Relative inputs only count as paths when they actually exist.
	if expanded, err := pathutil.Expand(input); err == nil {
		if _, statErr := os.Stat(expanded); statErr == nil {
			return Result{Kind: KindLocalPath, Path: input}
		}
	}

	return Result{Kind: KindUnrecognized}
}
