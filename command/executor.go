package command

import (
	"context"
	"os/exec"
)

// Executor creates the exec.Cmd instances behind every subprocess glon
// starts: git clones and IDE launchers. Keeping construction behind an
// interface lets tests substitute fake commands without touching the
// cloner or launcher.
type Executor interface {
	// Command creates an exec.Cmd for the given binary and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates an exec.Cmd bound to ctx, so clone timeouts
	// and cancellation propagate to the child process.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor is the production Executor, backed by os/exec.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
