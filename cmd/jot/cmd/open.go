package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"jot/internal/adapters/tui"
	"jot/internal/application/commands"
)

var (
	rawOutput    bool
	copyPath     bool
	historyLimit int
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a note in the editor",
	Long: `Open a note of the active folder in the configured editor.

The name is matched against note names first, then aliases. When nothing
matches and a terminal is attached, you can pick the note from a list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.NewOpenNoteCommand(GetApp(), args[0]).Execute(context.Background())
		return err
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a note rendered as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewShowNoteCommand(GetApp(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if rawOutput || !isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprint(out, result.Content)
			return nil
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		rendered, err := renderer.Render(result.Content)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", result.Note.Name(), err)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print the absolute path of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewNotePathCommand(GetApp(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Path)

		if copyPath {
			if err := clipboard.WriteAll(result.Path); err != nil {
				return fmt.Errorf("failed to copy path: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), tui.Muted("Copied to clipboard"))
		}
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Open today's note, creating it when missing",
	Long: `Open the note named after today's date (YYYY-MM-DD) in the active folder.

A missing daily note is created, filled from the vault's "daily" template
when there is one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.NewTodayCommand(GetApp()).Execute(context.Background())
		return err
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Reopen the most recently opened note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := commands.NewLastCommand(GetApp()).Execute(context.Background())
		return err
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened notes of the current vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewHistoryCommand(GetApp(), historyLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Entries) == 0 {
			fmt.Fprintln(out, tui.Muted("No notes opened yet"))
			return nil
		}
		for _, e := range result.Entries {
			fmt.Fprintf(out, "%s  %s  %s\n",
				tui.Muted(e.OpenedAt.Format("2006-01-02 15:04")),
				e.Path,
				tui.Muted(fmt.Sprintf("(%d)", e.Count)),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(historyCmd)
	showCmd.Flags().BoolVarP(&rawOutput, "raw", "r", false, "print the markdown source")
	pathCmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "copy the path to the clipboard")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of notes to list")
}
