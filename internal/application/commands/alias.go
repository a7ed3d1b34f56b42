package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
)

// AliasResult contains the result of an alias operation
type AliasResult struct {
	Note    string
	Alias   string
	Message string
}

// AliasCommand sets or removes the alias of a note
type AliasCommand struct {
	manager *application.Manager
	Note    string
	Alias   string
	Remove  bool
}

// NewAliasCommand creates a new AliasCommand
func NewAliasCommand(manager *application.Manager, note, alias string, remove bool) *AliasCommand {
	return &AliasCommand{
		manager: manager,
		Note:    note,
		Alias:   alias,
		Remove:  remove,
	}
}

// Validate checks if the alias operation is valid
func (c *AliasCommand) Validate() error {
	if err := application.ValidateRequired("note", c.Note); err != nil {
		return err
	}
	if c.Remove {
		return nil
	}
	return application.ValidateName("alias", c.Alias)
}

// Execute runs the alias command
func (c *AliasCommand) Execute(ctx context.Context) (*AliasResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Remove {
		alias, err := c.manager.RemoveAlias(c.Note)
		if err != nil {
			return nil, err
		}
		return &AliasResult{
			Note:    c.Note,
			Alias:   alias,
			Message: fmt.Sprintf("Removed alias %s of note %s", alias, c.Note),
		}, nil
	}

	if err := c.manager.SetAlias(c.Note, c.Alias); err != nil {
		return nil, err
	}
	return &AliasResult{
		Note:    c.Note,
		Alias:   c.Alias,
		Message: fmt.Sprintf("Aliased note %s as %s", c.Note, c.Alias),
	}, nil
}
