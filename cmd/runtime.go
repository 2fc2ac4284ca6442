package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/glon/cli"
	"github.com/grovetools/glon/config"
	"github.com/grovetools/glon/logging"
	"github.com/grovetools/glon/pkg/clone"
	"github.com/grovetools/glon/pkg/ide"
	"github.com/grovetools/glon/pkg/resolve"
	"github.com/grovetools/glon/pkg/scan"
	"github.com/grovetools/glon/pkg/timewin"
)

var (
	projectStyle = lipgloss.NewStyle().Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// runtime bundles the configuration and collaborators a command invocation
// needs. Decisions stay in pkg/resolve; runtime only executes them.
type runtime struct {
	cfg      *config.Config
	ide      ide.IDE
	logger   *logrus.Logger
	json     bool
	dryRun   bool
	cloner   *clone.Cloner
	launcher *ide.Launcher
	scanner  *scan.Scanner
}

// newRuntime loads configuration, applies flag overrides and wires the
// collaborators for one invocation.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	opts := cli.GetOptions(cmd)

	var cfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	logging.Apply(cfg.Logging)

	// Flag overrides beat the config file.
	if cmd.Flags().Changed("base-path") {
		cfg.BasePath, _ = cmd.Flags().GetString("base-path")
	}
	if cmd.Flags().Changed("ide") {
		cfg.IDE, _ = cmd.Flags().GetString("ide")
	}

	selected, err := cfg.SelectedIDE()
	if err != nil {
		return nil, err
	}

	dryRun := false
	if cmd.Flags().Lookup("dry-run") != nil {
		dryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	return &runtime{
		cfg:      cfg,
		ide:      selected,
		logger:   cli.GetLogger(cmd),
		json:     opts.JSONOutput,
		dryRun:   dryRun,
		cloner:   clone.NewCloner(),
		launcher: ide.NewLauncher(),
		scanner:  scan.NewScanner(),
	}, nil
}

func (rt *runtime) resolver() *resolve.Resolver {
	return resolve.New(rt.cfg.BasePath, rt.ide)
}

// execute carries out a resolved intent. A dry run still reports the
// decision; it only suppresses the side effects.
func (rt *runtime) execute(ctx context.Context, intent resolve.Intent) error {
	rt.logger.WithFields(logrus.Fields{
		"intent": intent.Kind.String(),
		"target": intent.TargetPath,
	}).Debug("Executing intent")

	// JSON mode emits exactly one document per invocation: the intent, or
	// for listings the project array printed by listProjects.
	if rt.json && intent.Kind != resolve.IntentListProjects {
		data, err := json.MarshalIndent(intent, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal intent to JSON: %w", err)
		}
		fmt.Println(string(data))
		if rt.dryRun {
			return nil
		}
	}

	switch intent.Kind {
	case resolve.IntentNoAction:
		if !rt.json {
			fmt.Printf("Nothing to do: %s\n", intent.Reason)
		}
		return nil

	case resolve.IntentClone:
		if rt.dryRun {
			fmt.Printf("Would clone %s to %s\n", intent.Ref.URL, intent.TargetPath)
			return nil
		}
		if err := rt.cloner.Clone(ctx, *intent.Ref, intent.TargetPath); err != nil {
			return err
		}
		if !rt.json {
			fmt.Printf("Repository ready at: %s\n", intent.TargetPath)
		}
		return nil

	case resolve.IntentOpen:
		if rt.dryRun {
			fmt.Printf("Would open %s in %s\n", intent.TargetPath, intent.IDE)
			return nil
		}
		if err := rt.launcher.Open(ctx, intent.TargetPath, intent.IDE); err != nil {
			return err
		}
		if !rt.json {
			fmt.Printf("Opening %s in %s\n", intent.TargetPath, intent.IDE)
		}
		return nil

	case resolve.IntentCloneThenOpen:
		if rt.dryRun {
			fmt.Printf("Would clone %s to %s and open it in %s\n",
				intent.Ref.URL, intent.TargetPath, intent.IDE)
			return nil
		}
		// A failed clone must prevent the open attempt.
		if err := rt.cloner.Clone(ctx, *intent.Ref, intent.TargetPath); err != nil {
			return err
		}
		if err := rt.launcher.Open(ctx, intent.TargetPath, intent.IDE); err != nil {
			return err
		}
		if !rt.json {
			fmt.Printf("Cloned %s and opened it in %s\n", intent.TargetPath, intent.IDE)
		}
		return nil

	case resolve.IntentListProjects:
		// Listing is read-only, so it runs even under --dry-run.
		return rt.listProjects(intent.Window)
	}

	return nil
}

// listProjects scans the base directory and prints the projects inside the
// window, most recently modified first.
func (rt *runtime) listProjects(window timewin.Window) error {
	projects, err := rt.scanner.Scan(rt.cfg.BasePath)
	if err != nil {
		return err
	}

	filtered := timewin.Filter(projects, window)

	if rt.json {
		data, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal projects to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(filtered) == 0 {
		fmt.Printf("No projects found under %s (%s)\n", rt.cfg.BasePath, window.Label)
		return nil
	}

	maxName := 0
	for _, p := range filtered {
		if n := len(p.Owner) + 1 + len(p.Repo); n > maxName {
			maxName = n
		}
	}

	for _, p := range filtered {
		name := p.Owner + "/" + p.Repo
		fmt.Printf("%s%*s  %s  %s\n",
			projectStyle.Render(name),
			maxName-len(name), "",
			timeStyle.Render(fmt.Sprintf("%-12s", relativeTime(p.LastModified))),
			pathStyle.Render(p.Path))
	}
	return nil
}

// relativeTime renders a modification time as a short age like "3d ago".
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
