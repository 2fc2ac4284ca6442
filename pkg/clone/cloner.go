// Package clone executes resolved clone intents with the git CLI.
package clone

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/glon/command"
	glonerrors "github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/logging"
	"github.com/grovetools/glon/pkg/refs"
)

// Cloner runs git clone through the injectable command executor.
type Cloner struct {
	builder *command.SafeBuilder
	logger  *logrus.Entry
}

// NewCloner creates a cloner backed by real process execution.
func NewCloner() *Cloner {
	return NewClonerWithExecutor(&command.RealExecutor{})
}

// NewClonerWithExecutor creates a cloner with a custom executor, for tests.
func NewClonerWithExecutor(exec command.Executor) *Cloner {
	return &Cloner{
		builder: command.NewSafeBuilderWithExecutor(exec),
		logger:  logging.NewLogger("clone"),
	}
}

// Clone clones the referenced repository into target. The target directory
// is created if needed but a non-empty target is refused so an existing
// clone is never overwritten.
func (c *Cloner) Clone(ctx context.Context, ref refs.RemoteRef, target string) error {
	if err := c.builder.Validate("remoteURL", ref.URL); err != nil {
		return glonerrors.Wrap(err, glonerrors.ErrCodeInvalidInput, "unsafe repository URL")
	}
	if err := c.builder.Validate("filePath", target); err != nil {
		return glonerrors.Wrap(err, glonerrors.ErrCodeInvalidInput, "unsafe target path")
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return glonerrors.Wrap(err, glonerrors.ErrCodeInternal, "failed to create target directory").
			WithDetail("path", target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return glonerrors.Wrap(err, glonerrors.ErrCodeInternal, "failed to read target directory").
			WithDetail("path", target)
	}
	if len(entries) > 0 {
		return glonerrors.CloneTargetNotEmpty(target)
	}

	c.logger.WithFields(logrus.Fields{"url": ref.URL, "target": target}).Info("Cloning repository")

	cmd, err := c.builder.Build(ctx, "git", "clone", ref.URL, target)
	if err != nil {
		return glonerrors.Wrap(err, glonerrors.ErrCodeInternal, "failed to build clone command")
	}

	if output, err := cmd.Exec().CombinedOutput(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return glonerrors.GitNotInstalled(err)
		}
		return glonerrors.GitCloneFailed(ref.URL, err).
			WithDetail("output", string(output))
	}

	return nil
}
