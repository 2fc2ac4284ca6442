package errors

import (
	"fmt"
	"os/exec"
	"testing"
)

func TestGlonError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeUnknownIDE, "unknown IDE")
	if err.Code != ErrCodeUnknownIDE {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownIDE, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeGitCloneFailed, "clone failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeGitCloneFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeUnknownIDE) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("ide", "emacs").WithDetail("attempt", 1)
	if detailed.Details["ide"] != "emacs" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test UnknownIDE
	err := UnknownIDE("emacs")
	if err.Code != ErrCodeUnknownIDE {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownIDE, err.Code)
	}
	if err.Details["ide"] != "emacs" {
		t.Error("UnknownIDE should include ide detail")
	}

	// Test InvalidWindow
	err = InvalidWindow("last fortnight")
	if err.Code != ErrCodeInvalidWindow {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidWindow, err.Code)
	}
	if err.Details["expression"] != "last fortnight" {
		t.Error("InvalidWindow should include expression detail")
	}

	// Test BaseUnreadable
	cause := fmt.Errorf("permission denied")
	err = BaseUnreadable("/srv/github", cause)
	if err.Code != ErrCodeBaseUnreadable {
		t.Errorf("expected code %s, got %s", ErrCodeBaseUnreadable, err.Code)
	}
	if err.Unwrap() != cause {
		t.Error("BaseUnreadable should wrap the cause")
	}

	// Test CloneTargetNotEmpty
	err = CloneTargetNotEmpty("/home/me/github/alice/tools")
	if err.Code != ErrCodeCloneTargetNotEmpty {
		t.Errorf("expected code %s, got %s", ErrCodeCloneTargetNotEmpty, err.Code)
	}
}

func TestGitCloneFailed(t *testing.T) {
	url := "git@github.com:alice/tools.git"

	// A plain error carries only the url detail.
	err := GitCloneFailed(url, fmt.Errorf("network unreachable"))
	if err.Code != ErrCodeGitCloneFailed {
		t.Errorf("expected code %s, got %s", ErrCodeGitCloneFailed, err.Code)
	}
	if err.Details["url"] != url {
		t.Error("GitCloneFailed should include url detail")
	}
	if _, ok := err.Details["exitCode"]; ok {
		t.Error("exitCode detail should be absent for a non-exit error")
	}

	// A process exit failure contributes its exit code.
	runErr := exec.Command("sh", "-c", "exit 3").Run()
	if runErr == nil {
		t.Fatal("expected command to fail")
	}
	err = GitCloneFailed(url, runErr)
	if err.Details["exitCode"] != 3 {
		t.Errorf("expected exitCode 3, got %v", err.Details["exitCode"])
	}
}
