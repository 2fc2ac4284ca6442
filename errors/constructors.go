package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GlonError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *GlonError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnknownIDE creates an unknown IDE selector error
func UnknownIDE(name string) *GlonError {
	return New(ErrCodeUnknownIDE, fmt.Sprintf("unknown IDE '%s'", name)).
		WithDetail("ide", name)
}

// BaseUnreadable creates a scan error for an unreadable base directory
func BaseUnreadable(path string, err error) *GlonError {
	return Wrap(err, ErrCodeBaseUnreadable,
		fmt.Sprintf("base directory is not readable: %s", path)).
		WithDetail("path", path)
}

// InvalidWindow creates a malformed time-window expression error
func InvalidWindow(expr string) *GlonError {
	return New(ErrCodeInvalidWindow, fmt.Sprintf("unrecognized time window '%s'", expr)).
		WithDetail("expression", expr)
}

// GitNotInstalled creates an error for a missing git binary
func GitNotInstalled(err error) *GlonError {
	return Wrap(err, ErrCodeGitNotInstalled, "git is not installed or not in PATH")
}

// GitCloneFailed creates a clone failure error
func GitCloneFailed(url string, err error) *GlonError {
	glonErr := Wrap(err, ErrCodeGitCloneFailed, fmt.Sprintf("failed to clone %s", url)).
		WithDetail("url", url)

	// Git's message arrives via the caller's combined-output detail; only
	// the exit code is recoverable here.
	if exitErr, ok := err.(*exec.ExitError); ok {
		glonErr = glonErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return glonErr
}

// CloneTargetNotEmpty creates an error for a clone target that already has content
func CloneTargetNotEmpty(path string) *GlonError {
	return New(ErrCodeCloneTargetNotEmpty,
		fmt.Sprintf("target directory %s is not empty, skipping clone", path)).
		WithDetail("path", path)
}

// IDELaunchFailed creates an IDE launch failure error
func IDELaunchFailed(ide string, err error) *GlonError {
	return Wrap(err, ErrCodeIDELaunchFailed, fmt.Sprintf("failed to launch %s", ide)).
		WithDetail("ide", ide)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *GlonError {
	glonErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		glonErr = glonErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return glonErr
}
