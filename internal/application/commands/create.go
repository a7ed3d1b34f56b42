package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"jot/internal/application"
	"jot/internal/domain"
	"jot/internal/template"
	"jot/internal/vault"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	Note    *vault.Note
	Message string
}

// CreateNoteCommand creates a note in the active location, optionally
// filled from a template
type CreateNoteCommand struct {
	manager  *application.Manager
	Name     string
	Template string
	Slug     bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(manager *application.Manager, name, templateName string, useSlug bool) *CreateNoteCommand {
	return &CreateNoteCommand{
		manager:  manager,
		Name:     name,
		Template: templateName,
		Slug:     useSlug,
		Now:      time.Now,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	if err := application.ValidateName("name", c.fileName()); err != nil {
		return err
	}
	if c.Template != "" {
		return application.ValidateName("templateName", c.Template)
	}
	return nil
}

func (c *CreateNoteCommand) fileName() string {
	return itemName(c.Name, c.Slug)
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var content string
	if c.Template != "" {
		v, err := c.manager.Current()
		if err != nil {
			return nil, err
		}
		raw, err := template.Load(v.Path(), c.Template)
		if err != nil {
			return nil, err
		}
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		title := domain.StripNoteExtension(strings.TrimSpace(c.Name))
		content = template.Apply(raw, template.NewVariables(title, slug.Make(title), now()))
	}

	note, err := c.manager.CreateNote(c.fileName())
	if err != nil {
		return nil, err
	}
	if content != "" {
		if err := note.Write([]byte(content)); err != nil {
			return nil, err
		}
	}

	return &CreateNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Created note %s", note.Name()),
	}, nil
}

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	Folder  *vault.Folder
	Message string
}

// CreateFolderCommand creates a folder in the active location
type CreateFolderCommand struct {
	manager *application.Manager
	Name    string
	Slug    bool
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(manager *application.Manager, name string, useSlug bool) *CreateFolderCommand {
	return &CreateFolderCommand{
		manager: manager,
		Name:    name,
		Slug:    useSlug,
	}
}

// Validate checks if the create operation is valid
func (c *CreateFolderCommand) Validate() error {
	return application.ValidateName("name", itemName(c.Name, c.Slug))
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, err := c.manager.CreateFolder(itemName(c.Name, c.Slug))
	if err != nil {
		return nil, err
	}

	return &CreateFolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Created folder %s", folder.Name()),
	}, nil
}

// itemName returns the on-disk name for a user-supplied title.
func itemName(title string, useSlug bool) string {
	if !useSlug {
		return title
	}
	if slugged := slug.Make(domain.StripNoteExtension(title)); slugged != "" {
		return slugged
	}
	return title
}
