// Package paths provides XDG-compliant path resolution for glon.
//
// Resolution order:
// 1. GLON_HOME (portable root) → $GLON_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/glon
// 3. Platform defaults → ~/.config/glon, ~/.local/state/glon
package paths

import (
	"os"
	"path/filepath"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if glonHome := os.Getenv("GLON_HOME"); glonHome != "" {
		return filepath.Join(glonHome, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if glonHome := os.Getenv("GLON_HOME"); glonHome != "" {
		return filepath.Join(glonHome, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the glon configuration directory.
// Used for the glon.yml config file.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "glon")
}

// ConfigFile returns the default glon.yml path.
func ConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "glon.yml")
}

// StateDir returns the glon state directory.
// Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "glon")
}

// LogsDir returns the directory for glon log files.
func LogsDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// DefaultBasePath is the fallback base directory for organized clones
// when no configuration provides one.
const DefaultBasePath = "~/github"
