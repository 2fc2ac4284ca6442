package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/grovetools/glon/pkg/paths"
	"github.com/grovetools/glon/pkg/resolve"
	"github.com/grovetools/glon/pkg/timewin"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects in the organized directory layout",
		Long: `List the owner/repo projects found under the base directory,
most recently modified first. A project is any <base>/<owner>/<repo>
directory containing a .git marker.

--since narrows the listing to a time window: a number of days, or one
of the phrases "last week", "last month", "last year".`,
		Example: `  # Everything
  glon list

  # Touched in the last 30 days
  glon list --since 30

  # Touched in the last calendar month, as JSON
  glon list --since "last month" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}

			since, _ := cmd.Flags().GetString("since")
			window, err := timewin.Resolve(since, time.Now())
			if err != nil {
				return err
			}

			return rt.execute(cmd.Context(), resolve.Intent{
				Kind:   resolve.IntentListProjects,
				Window: window,
			})
		},
	}

	cmd.Flags().String("base-path", paths.DefaultBasePath, "Root directory for organized clones")
	cmd.Flags().String("since", "", "Only show projects modified within this window (days or \"last week/month/year\")")

	return cmd
}
