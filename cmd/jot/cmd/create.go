package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"jot/internal/application/commands"
)

var (
	noteTemplate string
	useSlug      bool
	openAfter    bool
)

var noteCmd = &cobra.Command{
	Use:   "note <name>",
	Short: "Create a note in the active folder",
	Long: `Create an empty note in the active folder of the current vault.

With --template the note is filled from a template of the vault, with
{{title}}, {{date}} and the other placeholders substituted.

Examples:
  jot note todo
  jot note "Meeting notes" --slug          # creates meeting-notes.md
  jot note standup -t meeting --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewCreateNoteCommand(GetApp().Manager, args[0], noteTemplate, useSlug).Execute(ctx)
		if err != nil {
			return err
		}
		printMessage(cmd, result.Message)

		if openAfter {
			if _, err := commands.NewOpenNoteCommand(GetApp(), result.Note.Name()).Execute(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}

var folderCmd = &cobra.Command{
	Use:   "folder <name>",
	Short: "Create a folder in the active folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCreateFolderCommand(GetApp().Manager, args[0], useSlug).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(folderCmd)
	noteCmd.Flags().StringVarP(&noteTemplate, "template", "t", "", "fill the note from this template")
	noteCmd.Flags().BoolVar(&useSlug, "slug", false, "turn the name into a url-friendly slug")
	noteCmd.Flags().BoolVarP(&openAfter, "open", "o", false, "open the note after creating it")
	folderCmd.Flags().BoolVar(&useSlug, "slug", false, "turn the name into a url-friendly slug")
}
