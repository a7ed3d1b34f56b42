package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jot/internal/adapters/editor"
	"jot/internal/adapters/filesystem"
	"jot/internal/adapters/obsidian"
	"jot/internal/adapters/sqlite"
	"jot/internal/adapters/tui"
	"jot/internal/application"
	"jot/internal/config"
	"jot/internal/ports"
)

var (
	verbose  bool
	app      *application.App
	prompter *tui.Prompter
)

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Keep markdown notes in named vaults",
	Long: `jot manages notes kept as markdown files in named vaults.

Vaults are directories registered under a name. Inside the current vault
you create notes and folders, move into a folder with chdir, and open notes
in your editor by name or alias.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		home, err := config.Home()
		if err != nil {
			return err
		}
		app, err = newApp(home, verbose)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// newApp loads the config and registry from home and wires the adapters.
func newApp(home string, verbose bool) (*application.App, error) {
	cfg, err := config.Load(filepath.Join(home, config.ConfigFileName))
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry, err := filesystem.LoadRegistry(filepath.Join(home, filesystem.RegistryFileName))
	if err != nil {
		return nil, err
	}

	prompter = tui.NewPrompter()
	return &application.App{
		Config:   cfg,
		Manager:  application.NewManager(registry, logger),
		Editor:   newEditor(cfg),
		Prompter: prompter,
		History:  sqlite.NewHistory(logger),
		Logger:   logger,
	}, nil
}

func newEditor(cfg *config.Config) ports.EditorLauncher {
	if cfg.Editor == obsidian.EditorName {
		return obsidian.NewLauncher()
	}
	return editor.NewLauncher(cfg.Editor, cfg.Conflict)
}

// GetApp returns the initialized application
func GetApp() *application.App {
	return app
}

// printMessage writes a command's confirmation message
func printMessage(cmd *cobra.Command, message string) {
	fmt.Fprintln(cmd.OutOrStdout(), tui.Message(message))
}
