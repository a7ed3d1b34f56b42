package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
	"jot/internal/template"
)

// TemplateResult contains the templates of the current vault, or the
// template that was opened
type TemplateResult struct {
	Templates []string
	Path      string
	Message   string
}

// TemplateCommand lists the templates of the current vault, or creates
// and opens one when Name is set
type TemplateCommand struct {
	app  *application.App
	Name string
}

// NewTemplateCommand creates a new TemplateCommand
func NewTemplateCommand(app *application.App, name string) *TemplateCommand {
	return &TemplateCommand{app: app, Name: name}
}

// Validate checks the template name
func (c *TemplateCommand) Validate() error {
	if c.Name == "" {
		return nil
	}
	return application.ValidateName("templateName", c.Name)
}

// Execute runs the template command
func (c *TemplateCommand) Execute(ctx context.Context) (*TemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	v, err := c.app.Manager.Current()
	if err != nil {
		return nil, err
	}

	if c.Name == "" {
		names, err := template.List(v.Path())
		if err != nil {
			return nil, err
		}
		return &TemplateResult{Templates: names}, nil
	}

	path, err := template.Create(v.Path(), c.Name)
	if err != nil {
		return nil, err
	}
	if _, err := c.app.Editor.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", c.Name, err)
	}
	return &TemplateResult{
		Path:    path,
		Message: fmt.Sprintf("Opened template %s", c.Name),
	}, nil
}
