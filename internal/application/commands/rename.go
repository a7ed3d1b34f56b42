package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
	"jot/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Kind    domain.ItemKind
	OldName string
	NewName string
	Message string
}

// RenameCommand renames a note, folder or vault
type RenameCommand struct {
	app     *application.App
	Kind    domain.ItemKind
	Name    string
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(app *application.App, kind domain.ItemKind, name, newName string) *RenameCommand {
	return &RenameCommand{
		app:     app,
		Kind:    kind,
		Name:    name,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateName("newName", c.NewName); err != nil {
		return err
	}
	return application.ValidateKind(c.Kind, domain.KindNote, domain.KindFolder, domain.KindVault)
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Kind == domain.KindVault {
		if err := c.app.Manager.RenameVault(c.Name, c.NewName); err != nil {
			return nil, err
		}
	} else {
		change, err := c.app.Manager.RenameItem(c.Kind, c.Name, c.NewName)
		if err != nil {
			return nil, err
		}
		c.app.TrackChange(ctx, change)
	}

	return &RenameResult{
		Kind:    c.Kind,
		OldName: c.Name,
		NewName: c.NewName,
		Message: fmt.Sprintf("Renamed %s %s to %s", c.Kind, c.Name, c.NewName),
	}, nil
}
