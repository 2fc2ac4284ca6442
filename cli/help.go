package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 60
const minWidth = 40

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	sectionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		// Wrap long lines
		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies consistent glon styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	// Get terminal width for wrapping (subtract 2 for indent)
	width := getTerminalWidth() - 2

	// Title - uppercase command path
	fmt.Println(" " + titleStyle.Render(strings.ToUpper(cmd.CommandPath())))

	if cmd.Short != "" {
		for _, line := range strings.Split(wrapText(cmd.Short, width), "\n") {
			fmt.Println(" " + line)
		}
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Println()
		for _, line := range strings.Split(wrapText(cmd.Long, width), "\n") {
			fmt.Println(" " + line)
		}
	}

	// Usage section
	if cmd.Runnable() || cmd.HasSubCommands() {
		fmt.Println("\n " + sectionStyle.Render("USAGE"))
		if cmd.Runnable() {
			fmt.Printf(" %s\n", cmd.UseLine())
		}
		if cmd.HasSubCommands() {
			fmt.Printf(" %s [command]\n", cmd.CommandPath())
		}
	}

	// Commands section
	if cmd.HasAvailableSubCommands() {
		maxLen := 0
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() && len(sub.Name()) > maxLen {
				maxLen = len(sub.Name())
			}
		}

		fmt.Println("\n " + sectionStyle.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				padding := strings.Repeat(" ", maxLen-len(sub.Name()))
				fmt.Printf(" %s%s  %s\n", nameStyle.Render(sub.Name()), padding, sub.Short)
			}
		}
	}

	// Flags section - detailed for leaf commands, compact for parents
	var visibleFlags []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visibleFlags = append(visibleFlags, f)
		}
	})

	if len(visibleFlags) > 0 {
		if cmd.HasAvailableSubCommands() {
			var flags []string
			for _, f := range visibleFlags {
				if f.Shorthand != "" {
					flags = append(flags, fmt.Sprintf("-%s/--%s", f.Shorthand, f.Name))
				} else {
					flags = append(flags, fmt.Sprintf("--%s", f.Name))
				}
			}
			fmt.Println("\n " + mutedStyle.Render("Flags: "+strings.Join(flags, ", ")))
		} else {
			fmt.Println("\n " + sectionStyle.Render("FLAGS"))
			maxFlagLen := 0
			for _, f := range visibleFlags {
				if len(formatFlagName(f)) > maxFlagLen {
					maxFlagLen = len(formatFlagName(f))
				}
			}
			for _, f := range visibleFlags {
				flagStr := formatFlagName(f)
				padding := strings.Repeat(" ", maxFlagLen-len(flagStr))

				usage := f.Usage
				if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
					usage += mutedStyle.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
				}
				fmt.Printf(" %s%s  %s\n", flagStyle.Render(flagStr), padding, usage)
			}
		}
	}

	// Examples section
	if cmd.Example != "" {
		fmt.Println("\n " + sectionStyle.Render("EXAMPLES"))
		for _, line := range strings.Split(strings.TrimSpace(cmd.Example), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				fmt.Println()
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				fmt.Println("  " + mutedStyle.Render(trimmed))
			} else {
				fmt.Println("  " + trimmed)
			}
		}
	}

	// Help hint
	if cmd.HasSubCommands() {
		fmt.Printf("\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

// formatFlagName returns a formatted flag string like "-f, --flag" or "--flag".
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return fmt.Sprintf("    --%s", f.Name)
}
