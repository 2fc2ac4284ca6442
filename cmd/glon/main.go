package main

import (
	"os"

	"github.com/grovetools/glon/cli"
	"github.com/grovetools/glon/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"glon",
		"Organize git clones into a predictable owner/repo directory layout",
	)
	rootCmd.Long = `glon keeps git clones organized under a single base directory as
<base>/<owner>/<repo>, and opens them in your IDE.

Copy a repository URL and run "glon grab" to clone it into place, or
"glon open" to clone and open it in one step.`

	cli.SetVersion(rootCmd)

	rootCmd.AddCommand(cmd.NewGrabCmd())
	rootCmd.AddCommand(cmd.NewOpenCmd())
	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewPathsCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
