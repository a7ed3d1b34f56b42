package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jot/internal/adapters/tui"
	"jot/internal/application/commands"
)

var removeAlias bool

var aliasCmd = &cobra.Command{
	Use:   "alias <note> [alias]",
	Short: "Set or remove the alias of a note",
	Long: `Give a note of the active folder a short alias that open, show and path
accept in place of its name. Each note has at most one alias.

Without an alias argument you are prompted for one.

Examples:
  jot alias "meeting notes" mn
  jot alias "meeting notes" -r`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := ""
		if len(args) == 2 {
			alias = args[1]
		} else if !removeAlias {
			var err error
			alias, err = prompter.Input("Alias for "+args[0], "short name")
			if err != nil {
				return err
			}
		}

		result, err := commands.NewAliasCommand(GetApp().Manager, args[0], alias, removeAlias).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, result.Message)
		return nil
	},
}

var templateCmd = &cobra.Command{
	Use:     "template [name]",
	Aliases: []string{"templates"},
	Short:   "List templates, or create and edit one",
	Long: `Without a name, list the templates of the current vault. With a name,
create the template when missing and open it in the editor.

Templates live in .jot/templates inside the vault and may use the
placeholders {{title}}, {{slug}}, {{date}}, {{datetime}}, {{year}},
{{month}}, {{day}} and {{weekday}}.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		result, err := commands.NewTemplateCommand(GetApp(), name).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if name != "" {
			fmt.Fprintln(out, result.Path)
			return nil
		}
		if len(result.Templates) == 0 {
			fmt.Fprintln(out, tui.Muted("No templates"))
			return nil
		}
		for _, t := range result.Templates {
			fmt.Fprintln(out, t)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Show or change settings",
	Long: `Show every setting, show one, or change one.

Keys: editor, conflict, log_level.

Examples:
  jot config
  jot config editor
  jot config editor obsidian`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := "", ""
		if len(args) > 0 {
			key = args[0]
		}
		if len(args) > 1 {
			value = args[1]
		}

		result, err := commands.NewConfigCommand(GetApp().Config, key, value, len(args) == 2).Execute(context.Background())
		if err != nil {
			return err
		}
		if result.Message != "" {
			printMessage(cmd, result.Message)
			return nil
		}

		out := cmd.OutOrStdout()
		for _, e := range result.Entries {
			if key != "" {
				fmt.Fprintln(out, e.Value)
				continue
			}
			fmt.Fprintf(out, "%s = %s\n", e.Key, e.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(configCmd)
	aliasCmd.Flags().BoolVarP(&removeAlias, "remove", "r", false, "remove the alias")
}
