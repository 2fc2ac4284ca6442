package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/glon/logging"
)

// CommandOptions holds common options for glon commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with standard glon flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Standard flags for all glon commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to glon.yml config file")

	// Apply styled help
	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("glon-cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}
