package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
)

// ChangeFolderResult contains the new active location
type ChangeFolderResult struct {
	// Folder is relative to the vault root, empty at the root.
	Folder  string
	Message string
}

// ChangeFolderCommand moves the active folder of the current vault
type ChangeFolderCommand struct {
	manager *application.Manager
	Path    string
}

// NewChangeFolderCommand creates a new ChangeFolderCommand
func NewChangeFolderCommand(manager *application.Manager, path string) *ChangeFolderCommand {
	return &ChangeFolderCommand{manager: manager, Path: path}
}

// Execute runs the change folder command
func (c *ChangeFolderCommand) Execute(ctx context.Context) (*ChangeFolderResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}
	if err := c.manager.ChangeFolder(c.Path); err != nil {
		return nil, err
	}

	loc, err := c.manager.Location()
	if err != nil {
		return nil, err
	}
	return &ChangeFolderResult{
		Folder:  loc.RelativePath(),
		Message: fmt.Sprintf("Changed folder to %s", loc.Name()),
	}, nil
}
