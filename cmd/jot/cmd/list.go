package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jot/internal/adapters/tui"
	"jot/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the active folder as a tree",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewListCommand(GetApp().Manager).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		colors := GetApp().Config.Colors
		fmt.Fprintln(out, tui.VaultName(colors, result.Location.Name(), false))
		tree := result.Tree(tui.TreePaint(colors))
		if tree == "" {
			fmt.Fprintln(out, tui.Muted("(empty)"))
			return nil
		}
		fmt.Fprint(out, tree)
		return nil
	},
}

var chdirCmd = &cobra.Command{
	Use:     "chdir <path>",
	Aliases: []string{"cd"},
	Short:   "Change the active folder",
	Long: `Change the active folder of the current vault.

The path is resolved against the active folder and ".." goes up one level.
The active folder never leaves the vault.

Examples:
  jot chdir projects
  jot cd ../archive
  jot cd ..`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewChangeFolderCommand(GetApp().Manager, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, result.Message)
		return nil
	},
}

var findType string

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Find notes and folders in the current vault",
	Long: `Find notes and folders anywhere in the current vault.

Patterns containing *, ?, [ or { are globs over vault-relative paths
("projects/**.md"); anything else is matched fuzzily against names.

Examples:
  jot find meeting
  jot find "*.md" --type note`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := commands.NewFindCommand(GetApp().Manager, args[0], findType).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(matches) == 0 {
			fmt.Fprintln(out, tui.Muted("No results found"))
			return nil
		}
		for _, m := range matches {
			fmt.Fprintf(out, "%-6s  %s\n", m.Kind, m.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chdirCmd)
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVarP(&findType, "type", "t", "", "restrict results to note or folder")
}
