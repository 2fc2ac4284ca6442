package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/glon/pkg/clipboard"
	"github.com/grovetools/glon/pkg/ide"
	"github.com/grovetools/glon/pkg/paths"
)

func NewOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [target]",
		Short: "Open a project in the configured IDE, cloning it first if needed",
		Long: `Open a project directory in the configured IDE.

The target may be an owner/repo shorthand resolved under the base
directory, a filesystem path, or a repository URL. Without a target,
glon reads the clipboard: a repository URL there is opened at its
organized location (cloning first when it is not on disk yet), and
anything else falls back to listing the existing projects.`,
		Example: `  # Open an existing clone by shorthand
  glon open alice/tools

  # Copy a repository URL, then clone-and-open in one step
  glon open

  # Open in a specific IDE
  glon open alice/tools --ide vscode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			clip := ""
			if arg == "" {
				clip = clipboard.Candidate(rt.cfg.Clipboard.MaxLength)
			}

			intent, err := rt.resolver().Open(arg, clip)
			if err != nil {
				return err
			}
			return rt.execute(cmd.Context(), intent)
		},
	}

	cmd.Flags().String("base-path", paths.DefaultBasePath, "Root directory for organized clones")
	cmd.Flags().Bool("dry-run", false, "Report the decision without cloning or launching")
	cmd.Flags().String("ide", "", "IDE to open the project in ("+strings.Join(ide.Names(), ", ")+")")

	return cmd
}
