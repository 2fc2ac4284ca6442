package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/pkg/ide"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	// Check for specific error codes
	switch errors.GetCode(err) {
	case errors.ErrCodeUnknownIDE:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown IDE '%s'\n", glonErr.Details["ide"])
		}
		fmt.Fprintf(os.Stderr, "Recognized IDEs: %s\n", strings.Join(ide.Names(), ", "))
		return err

	case errors.ErrCodeInvalidWindow:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unrecognized time window '%s'\n", glonErr.Details["expression"])
		}
		fmt.Fprintf(os.Stderr, "Use a day count or one of: last week, last month, last year\n")
		return err

	case errors.ErrCodeBaseUnreadable:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Cannot read base directory %s\n", glonErr.Details["path"])
		}
		fmt.Fprintf(os.Stderr, "Check that the directory exists, or set base_path in glon.yml\n")
		return err

	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "❌ Git is not installed or not in PATH\n")
		return err

	case errors.ErrCodeGitCloneFailed:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to clone %s\n", glonErr.Details["url"])
			if output, ok := glonErr.Details["output"].(string); ok && output != "" {
				fmt.Fprintf(os.Stderr, "%s\n", strings.TrimSpace(output))
			}
		}
		return err

	case errors.ErrCodeCloneTargetNotEmpty:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Directory %s is not empty, skipping clone\n", glonErr.Details["path"])
		}
		return err

	case errors.ErrCodeIDELaunchFailed:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to launch %s\n", glonErr.Details["ide"])
		}
		fmt.Fprintf(os.Stderr, "Make sure the IDE's command-line launcher is installed\n")
		return err

	case errors.ErrCodeConfigNotFound:
		if glonErr, ok := err.(*errors.GlonError); ok {
			fmt.Fprintf(os.Stderr, "❌ Configuration file not found: %s\n", glonErr.Details["path"])
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if glonErr, ok := err.(*errors.GlonError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", glonErr.ToJSON())
			}
		}
		return err
	}
}
