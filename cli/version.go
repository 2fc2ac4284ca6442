package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/glon/version"
)

// SetVersion enables the --version flag on the root command with a template
// covering the full build information.
func SetVersion(cmd *cobra.Command) {
	info := version.GetInfo()
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}
