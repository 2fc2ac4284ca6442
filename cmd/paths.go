package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/glon/pkg/paths"
)

// PathsOutput represents the XDG-compliant paths used by glon.
type PathsOutput struct {
	ConfigDir  string `json:"config_dir"`
	ConfigFile string `json:"config_file"`
	StateDir   string `json:"state_dir"`
	LogsDir    string `json:"logs_dir"`
}

func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the XDG-compliant paths used by glon",
		Long: `Print the XDG-compliant paths used by glon.

The output is JSON, making it easy to parse from scripts.

- config_dir: Configuration directory
- config_file: The glon.yml configuration file
- state_dir: Runtime state
- logs_dir: Log files`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir:  paths.ConfigDir(),
				ConfigFile: paths.ConfigFile(),
				StateDir:   paths.StateDir(),
				LogsDir:    paths.LogsDir(),
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		},
	}
}
