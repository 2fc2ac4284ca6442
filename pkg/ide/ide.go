// Package ide launches a project directory in one of a fixed set of editors.
package ide

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/glon/command"
	"github.com/grovetools/glon/errors"
	"github.com/grovetools/glon/logging"
)

// IDE is an enumerated editor selector.
type IDE string

const (
	PyCharm  IDE = "pycharm"
	VSCode   IDE = "vscode"
	IntelliJ IDE = "intellij"
	WebStorm IDE = "webstorm"
	GoLand   IDE = "goland"
	Rider    IDE = "rider"
)

// Default is the IDE used when none is configured.
const Default = PyCharm

// launchers maps each IDE to its command-line launcher binary.
var launchers = map[IDE]string{
	PyCharm:  "charm",
	VSCode:   "code",
	IntelliJ: "idea",
	WebStorm: "webstorm",
	GoLand:   "goland",
	Rider:    "rider",
}

// Parse validates an IDE selector. An unrecognized name is a configuration
// error, never silently mapped to the default.
func Parse(name string) (IDE, error) {
	if name == "" {
		return Default, nil
	}

	ide := IDE(name)
	if _, ok := launchers[ide]; !ok {
		return "", errors.UnknownIDE(name)
	}
	return ide, nil
}

// Names returns the recognized IDE selectors, for help text.
func Names() []string {
	return []string{
		string(PyCharm), string(VSCode), string(IntelliJ),
		string(WebStorm), string(GoLand), string(Rider),
	}
}

// Launcher starts IDE processes through the injectable command executor.
type Launcher struct {
	executor command.Executor
	logger   *logrus.Entry
}

// NewLauncher creates a launcher backed by real process execution.
func NewLauncher() *Launcher {
	return NewLauncherWithExecutor(&command.RealExecutor{})
}

// NewLauncherWithExecutor creates a launcher with a custom executor, for tests.
func NewLauncherWithExecutor(exec command.Executor) *Launcher {
	return &Launcher{
		executor: exec,
		logger:   logging.NewLogger("ide"),
	}
}

// Open launches the IDE on the given path. The IDE process is detached from
// glon's lifetime; only the launch itself is awaited.
func (l *Launcher) Open(ctx context.Context, path string, ide IDE) error {
	binary, ok := launchers[ide]
	if !ok {
		return errors.UnknownIDE(string(ide))
	}

	l.logger.WithFields(logrus.Fields{"ide": ide, "path": path}).Debug("Launching IDE")

	cmd := l.executor.CommandContext(ctx, binary, path)
	if err := cmd.Start(); err != nil {
		return errors.IDELaunchFailed(string(ide), err)
	}

	// Release the child so the launcher process can exit independently.
	if err := cmd.Process.Release(); err != nil {
		return errors.IDELaunchFailed(string(ide), fmt.Errorf("release process: %w", err))
	}

	return nil
}
