package commands

import (
	"context"

	"jot/internal/application"
	"jot/internal/vault"
)

// ListResult contains the active location of the current vault
type ListResult struct {
	Vault    string
	Location vault.Location
}

// Tree renders the location as an indented tree.
func (r *ListResult) Tree(paint vault.Paint) string {
	return r.Location.RenderTree("", paint)
}

// ListCommand shows the contents of the active location
type ListCommand struct {
	manager *application.Manager
}

// NewListCommand creates a new ListCommand
func NewListCommand(manager *application.Manager) *ListCommand {
	return &ListCommand{manager: manager}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	v, err := c.manager.Current()
	if err != nil {
		return nil, err
	}
	loc, err := v.Location()
	if err != nil {
		return nil, err
	}
	return &ListResult{Vault: v.Name(), Location: loc}, nil
}
