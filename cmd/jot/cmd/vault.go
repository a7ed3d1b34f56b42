package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jot/internal/adapters/tui"
	"jot/internal/application/commands"
)

var showLocation bool

var vaultCmd = &cobra.Command{
	Use:     "vault [name] [parent-dir]",
	Aliases: []string{"vaults"},
	Short:   "List, locate or create vaults",
	Long: `List the registered vaults, show where one lives, or create a new one.

The current vault is marked with *.

Examples:
  jot vault                    # List vaults
  jot vault -l                 # List vaults with their locations
  jot vault work -l            # Show where work lives
  jot vault work ~/notes       # Create the vault ~/notes/work`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()
		colors := GetApp().Config.Colors

		switch len(args) {
		case 0:
			result, err := commands.NewListVaultsCommand(GetApp().Manager).Execute(ctx)
			if err != nil {
				return err
			}
			if len(result.Vaults) == 0 {
				fmt.Fprintln(out, tui.Muted("No vaults. Create one with: jot vault <name> <parent-dir>"))
				return nil
			}
			for _, v := range result.Vaults {
				if showLocation {
					fmt.Fprintf(out, "%s  %s\n", tui.VaultName(colors, v.Name, v.Current), v.Path)
				} else {
					fmt.Fprintln(out, tui.VaultName(colors, v.Name, v.Current))
				}
			}
			return nil

		case 1:
			if !showLocation {
				return fmt.Errorf("missing parent directory: jot vault %s <parent-dir>", args[0])
			}
			result, err := commands.NewVaultLocationCommand(GetApp().Manager, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result.Path)
			return nil

		default:
			result, err := commands.NewCreateVaultCommand(GetApp().Manager, args[0], args[1]).Execute(ctx)
			if err != nil {
				return err
			}
			printMessage(cmd, result.Message)
			return nil
		}
	},
}

var enterCmd = &cobra.Command{
	Use:   "enter <vault>",
	Short: "Make a vault the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewEnterVaultCommand(GetApp().Manager, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(cmd, result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(enterCmd)
	vaultCmd.Flags().BoolVarP(&showLocation, "location", "l", false, "show vault locations")
}
