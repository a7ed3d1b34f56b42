package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
	"jot/internal/domain"
)

// RemoveResult contains the result of a remove operation
type RemoveResult struct {
	Kind    domain.ItemKind
	Name    string
	Removed bool
	Message string
}

// RemoveCommand deletes a note, folder or vault after confirmation
type RemoveCommand struct {
	app   *application.App
	Kind  domain.ItemKind
	Name  string
	Force bool
}

// NewRemoveCommand creates a new RemoveCommand
func NewRemoveCommand(app *application.App, kind domain.ItemKind, name string, force bool) *RemoveCommand {
	return &RemoveCommand{
		app:   app,
		Kind:  kind,
		Name:  name,
		Force: force,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateKind(c.Kind, domain.KindNote, domain.KindFolder, domain.KindVault)
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context) (*RemoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.Force {
		ok, err := c.app.Confirm(fmt.Sprintf("Remove %s %s?", c.Kind, c.Name))
		if err != nil {
			return nil, err
		}
		if !ok {
			return &RemoveResult{
				Kind:    c.Kind,
				Name:    c.Name,
				Message: "Nothing removed",
			}, nil
		}
	}

	if c.Kind == domain.KindVault {
		if err := c.app.Manager.RemoveVault(c.Name); err != nil {
			return nil, err
		}
	} else {
		change, err := c.app.Manager.RemoveItem(c.Kind, c.Name)
		if err != nil {
			return nil, err
		}
		c.app.TrackChange(ctx, change)
	}

	return &RemoveResult{
		Kind:    c.Kind,
		Name:    c.Name,
		Removed: true,
		Message: fmt.Sprintf("Removed %s %s", c.Kind, c.Name),
	}, nil
}
