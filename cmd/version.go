package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/glon/version"
)

func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the glon version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(info.String())
			return nil
		},
	}

	return cmd
}
