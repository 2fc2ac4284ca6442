package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/glon/pkg/clipboard"
	"github.com/grovetools/glon/pkg/paths"
)

func NewGrabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grab [url]",
		Short: "Clone a repository into the organized directory layout",
		Long: `Clone a repository into <base>/<owner>/<repo>.

The URL may be given as an argument; without one, glon reads the
clipboard. SSH (git@host:owner/repo.git) and HTTPS
(https://host/owner/repo) forms are recognized. Local paths and
unrecognized input are no-ops.`,
		Example: `  # Clone an explicit URL
  glon grab git@github.com:alice/tools.git

  # Copy a repository URL, then just
  glon grab

  # See what would happen without cloning
  glon grab --dry-run https://github.com/alice/tools`,
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

			intent, err := rt.resolver().Grab(arg, clip)
			if err != nil {
				return err
			}
			return rt.execute(cmd.Context(), intent)
		},
	}

	cmd.Flags().String("base-path", paths.DefaultBasePath, "Root directory for organized clones")
	cmd.Flags().Bool("dry-run", false, "Report the decision without cloning")

	return cmd
}
