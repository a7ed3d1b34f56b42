package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"jot/internal/application/commands"
	"jot/internal/domain"
)

var forceRemove bool

// kindAliases are the short forms accepted for each item kind.
var kindAliases = map[domain.ItemKind][]string{
	domain.KindNote:   {"nt"},
	domain.KindFolder: {"fd"},
	domain.KindVault:  {"vl"},
}

// kindCommand builds the "<verb> <kind> ..." subcommand for kind.
func kindCommand(kind domain.ItemKind, args string, n int, run func(cmd *cobra.Command, kind domain.ItemKind, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     kind.String() + " " + args,
		Aliases: kindAliases[kind],
		Args:    cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, a []string) error {
			return run(cmd, kind, a)
		},
	}
}

var removeCmd = &cobra.Command{
	Use:     "remove <note|folder|vault> <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a note, folder or vault",
	Long: `Remove a note or folder of the active folder, or a whole vault.

You are asked to confirm unless --force is given. Removing a vault whose
directory is already gone only unregisters it.

Examples:
  jot remove note todo
  jot rm fd old-projects
  jot remove vault scratch --force`,
}

var renameCmd = &cobra.Command{
	Use:   "rename <note|folder|vault> <name> <new-name>",
	Short: "Rename a note, folder or vault",
	Long: `Rename a note or folder of the active folder, or a vault.

A note keeps its alias when renamed.

Examples:
  jot rename note todo done
  jot rename vault work job`,
}

var moveCmd = &cobra.Command{
	Use:     "move <note|folder|vault> <name> <destination>",
	Aliases: []string{"mv"},
	Short:   "Move a note, folder or vault",
	Long: `Move a note or folder of the active folder into another folder of the
same vault, or move a vault directory to a new parent directory.

For notes and folders the destination is resolved like chdir.

Examples:
  jot move note todo projects
  jot move folder drafts ../archive
  jot move vault work ~/Documents`,
}

var vmoveCmd = &cobra.Command{
	Use:   "vmove <note|folder> <name> <vault>",
	Short: "Move a note or folder to another vault",
	Long: `Move a note of the active folder, or a folder of the vault root, to the
root of another registered vault.

Examples:
  jot vmove note todo archive
  jot vmove fd old-projects archive`,
}

func runRemove(cmd *cobra.Command, kind domain.ItemKind, args []string) error {
	result, err := commands.NewRemoveCommand(GetApp(), kind, args[0], forceRemove).Execute(context.Background())
	if err != nil {
		return err
	}
	printMessage(cmd, result.Message)
	return nil
}

func runRename(cmd *cobra.Command, kind domain.ItemKind, args []string) error {
	result, err := commands.NewRenameCommand(GetApp(), kind, args[0], args[1]).Execute(context.Background())
	if err != nil {
		return err
	}
	printMessage(cmd, result.Message)
	return nil
}

func runMove(cmd *cobra.Command, kind domain.ItemKind, args []string) error {
	result, err := commands.NewMoveCommand(GetApp(), kind, args[0], args[1]).Execute(context.Background())
	if err != nil {
		return err
	}
	printMessage(cmd, result.Message)
	return nil
}

func runVaultMove(cmd *cobra.Command, kind domain.ItemKind, args []string) error {
	result, err := commands.NewVaultMoveCommand(GetApp(), kind, args[0], args[1]).Execute(context.Background())
	if err != nil {
		return err
	}
	printMessage(cmd, result.Message)
	return nil
}

func init() {
	allKinds := []domain.ItemKind{domain.KindNote, domain.KindFolder, domain.KindVault}
	for _, kind := range allKinds {
		rm := kindCommand(kind, "<name>", 1, runRemove)
		rm.Short = "Remove a " + kind.String()
		rm.Flags().BoolVarP(&forceRemove, "force", "f", false, "do not ask for confirmation")
		removeCmd.AddCommand(rm)

		rn := kindCommand(kind, "<name> <new-name>", 2, runRename)
		rn.Short = "Rename a " + kind.String()
		renameCmd.AddCommand(rn)

		mv := kindCommand(kind, "<name> <destination>", 2, runMove)
		mv.Short = "Move a " + kind.String()
		moveCmd.AddCommand(mv)
	}
	for _, kind := range []domain.ItemKind{domain.KindNote, domain.KindFolder} {
		vm := kindCommand(kind, "<name> <vault>", 2, runVaultMove)
		vm.Short = "Move a " + kind.String() + " to another vault"
		vmoveCmd.AddCommand(vm)
	}

	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(vmoveCmd)
}
