package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
	"jot/internal/domain"
)

// MoveResult contains the result of a move operation
type MoveResult struct {
	Kind        domain.ItemKind
	Name        string
	Destination string
	Message     string
}

// MoveCommand moves a note or folder to another directory of the vault,
// or a vault to another parent directory
type MoveCommand struct {
	app         *application.App
	Kind        domain.ItemKind
	Name        string
	Destination string
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(app *application.App, kind domain.ItemKind, name, destination string) *MoveCommand {
	return &MoveCommand{
		app:         app,
		Kind:        kind,
		Name:        name,
		Destination: destination,
	}
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("destination", c.Destination); err != nil {
		return err
	}
	return application.ValidateKind(c.Kind, domain.KindNote, domain.KindFolder, domain.KindVault)
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	destination := c.Destination
	if c.Kind == domain.KindVault {
		if err := c.app.Manager.MoveVault(c.Name, c.Destination); err != nil {
			return nil, err
		}
		if path, err := c.app.Manager.VaultPath(c.Name); err == nil {
			destination = path
		}
	} else {
		change, err := c.app.Manager.MoveItem(c.Kind, c.Name, c.Destination)
		if err != nil {
			return nil, err
		}
		c.app.TrackChange(ctx, change)
		destination = change.To
	}

	return &MoveResult{
		Kind:        c.Kind,
		Name:        c.Name,
		Destination: destination,
		Message:     fmt.Sprintf("Moved %s %s to %s", c.Kind, c.Name, destination),
	}, nil
}

// VaultMoveResult contains the result of moving an item between vaults
type VaultMoveResult struct {
	Kind    domain.ItemKind
	Name    string
	Vault   string
	Message string
}

// VaultMoveCommand moves a note or folder of the current vault into the
// root of another vault
type VaultMoveCommand struct {
	app   *application.App
	Kind  domain.ItemKind
	Name  string
	Vault string
}

// NewVaultMoveCommand creates a new VaultMoveCommand
func NewVaultMoveCommand(app *application.App, kind domain.ItemKind, name, vaultName string) *VaultMoveCommand {
	return &VaultMoveCommand{
		app:   app,
		Kind:  kind,
		Name:  name,
		Vault: vaultName,
	}
}

// Validate checks if the move operation is valid
func (c *VaultMoveCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("vaultName", c.Vault); err != nil {
		return err
	}
	return application.ValidateKind(c.Kind, domain.KindNote, domain.KindFolder)
}

// Execute runs the vault move command
func (c *VaultMoveCommand) Execute(ctx context.Context) (*VaultMoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.app.Manager.MoveItemToVault(c.Kind, c.Name, c.Vault)
	if err != nil {
		return nil, err
	}
	c.app.TrackChange(ctx, change)

	return &VaultMoveResult{
		Kind:    c.Kind,
		Name:    change.Name,
		Vault:   c.Vault,
		Message: fmt.Sprintf("Moved %s %s to vault %s", c.Kind, change.Name, c.Vault),
	}, nil
}
