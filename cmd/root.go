package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"topo-field/config"
	"topo-field/theme"
)

var version = "0.3.0"

var (
	configPath string
	themeFlag  string
	seedFlag   int64
	verbose    bool

	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:     "topo-field",
	Short:   "Animated network topology backdrop",
	Long:    Brand.Sprint("topo-field") + ": drifting nodes linked by proximity, with packets in flight.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		s, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			s.Seed = seedFlag
		}
		settings = s
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("topo-field {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "topo-field.yaml", "Settings file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Force a theme (light or dark) instead of the saved one")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		termCmd(),
		snapshotCmd(),
		themeCmd(),
	)
}

// Execute runs the CLI. Without a subcommand it opens the window, unless the
// binary was built with the nowindow tag.
func Execute() error {
	cmd, _, err := rootCmd.Find(os.Args[1:])
	if err == nil && cmd == rootCmd && hasRun() && !helpRequested(os.Args[1:]) {
		rootCmd.SetArgs(append([]string{"run"}, os.Args[1:]...))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		Bad.Fprintf(os.Stderr, "topo-field: %v\n", err)
		return err
	}
	return nil
}

func hasRun() bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			return true
		}
	}
	return false
}

func helpRequested(args []string) bool {
	for _, a := range args {
		switch a {
		case "-h", "--help", "--version":
			return true
		}
	}
	return false
}

// resolveMode picks the theme: --theme wins, then saved prefs, then dark.
func resolveMode() (theme.Mode, error) {
	if themeFlag != "" {
		return theme.ParseMode(themeFlag)
	}
	p, err := theme.LoadPrefs(settings.Theme.Prefs)
	if err != nil {
		slog.Warn("could not read theme prefs", "err", err)
	}
	return p.Theme, nil
}

func mustMode() (theme.Mode, error) {
	mode, err := resolveMode()
	if err != nil {
		return theme.Dark, fmt.Errorf("--theme: %w", err)
	}
	return mode, nil
}
