package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"jot/internal/application"
	"jot/internal/domain"
	"jot/internal/template"
	"jot/internal/vault"
)

// OpenNoteResult contains the result of opening a note
type OpenNoteResult struct {
	Note    *vault.Note
	Blocked bool
	Message string
}

// OpenNoteCommand opens a note of the active location in the editor
type OpenNoteCommand struct {
	app  *application.App
	Name string
}

// NewOpenNoteCommand creates a new OpenNoteCommand
func NewOpenNoteCommand(app *application.App, name string) *OpenNoteCommand {
	return &OpenNoteCommand{app: app, Name: name}
}

// Validate checks the note name
func (c *OpenNoteCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the open note command
func (c *OpenNoteCommand) Execute(ctx context.Context) (*OpenNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	note, err := c.app.ResolveNote(c.Name)
	if err != nil {
		return nil, err
	}
	return openNote(ctx, c.app, note)
}

func openNote(ctx context.Context, app *application.App, note *vault.Note) (*OpenNoteResult, error) {
	blocked, err := app.OpenNote(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", note.Name(), err)
	}
	return &OpenNoteResult{
		Note:    note,
		Blocked: blocked,
		Message: fmt.Sprintf("Opened note %s", note.Name()),
	}, nil
}

// ShowNoteResult contains the content of a note
type ShowNoteResult struct {
	Note    *vault.Note
	Content string
}

// ShowNoteCommand reads a note of the active location
type ShowNoteCommand struct {
	app  *application.App
	Name string
}

// NewShowNoteCommand creates a new ShowNoteCommand
func NewShowNoteCommand(app *application.App, name string) *ShowNoteCommand {
	return &ShowNoteCommand{app: app, Name: name}
}

// Execute runs the show note command
func (c *ShowNoteCommand) Execute(ctx context.Context) (*ShowNoteResult, error) {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return nil, err
	}
	note, err := c.app.ResolveNote(c.Name)
	if err != nil {
		return nil, err
	}
	content, err := note.Read()
	if err != nil {
		return nil, err
	}
	return &ShowNoteResult{Note: note, Content: string(content)}, nil
}

// NotePathResult contains the absolute path of a note
type NotePathResult struct {
	Note *vault.Note
	Path string
}

// NotePathCommand resolves a note of the active location to its path
type NotePathCommand struct {
	app  *application.App
	Name string
}

// NewNotePathCommand creates a new NotePathCommand
func NewNotePathCommand(app *application.App, name string) *NotePathCommand {
	return &NotePathCommand{app: app, Name: name}
}

// Execute runs the note path command
func (c *NotePathCommand) Execute(ctx context.Context) (*NotePathResult, error) {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return nil, err
	}
	note, err := c.app.ResolveNote(c.Name)
	if err != nil {
		return nil, err
	}
	return &NotePathResult{Note: note, Path: note.Path()}, nil
}

// TodayCommand opens the daily note of the active location, creating it
// from the "daily" template when one exists
type TodayCommand struct {
	app *application.App
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewTodayCommand creates a new TodayCommand
func NewTodayCommand(app *application.App) *TodayCommand {
	return &TodayCommand{app: app, Now: time.Now}
}

// DailyTemplate is applied to new daily notes when present.
const DailyTemplate = "daily"

// Execute runs the today command
func (c *TodayCommand) Execute(ctx context.Context) (*OpenNoteResult, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	date := now().Format(template.DateLayout)

	note, err := c.app.Manager.FindNote(date)
	if errors.Is(err, domain.ErrItemNotFound) {
		note, err = c.createDaily(date, now())
	}
	if err != nil {
		return nil, err
	}
	return openNote(ctx, c.app, note)
}

func (c *TodayCommand) createDaily(date string, now time.Time) (*vault.Note, error) {
	v, err := c.app.Manager.Current()
	if err != nil {
		return nil, err
	}
	note, err := c.app.Manager.CreateNote(date)
	if err != nil {
		return nil, err
	}
	raw, err := template.Load(v.Path(), DailyTemplate)
	if errors.Is(err, domain.ErrItemNotFound) {
		return note, nil
	}
	if err != nil {
		return nil, err
	}
	content := template.Apply(raw, template.NewVariables(date, date, now))
	if err := note.Write([]byte(content)); err != nil {
		return nil, err
	}
	return note, nil
}

// HistoryResult contains recently opened notes
type HistoryResult struct {
	Entries []HistoryItem
}

// HistoryItem is one recently opened note
type HistoryItem struct {
	Path     string
	OpenedAt time.Time
	Count    int
}

// HistoryCommand lists the most recently opened notes of the current vault
type HistoryCommand struct {
	app   *application.App
	Limit int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(app *application.App, limit int) *HistoryCommand {
	return &HistoryCommand{app: app, Limit: limit}
}

// Validate checks the limit
func (c *HistoryCommand) Validate() error {
	if c.Limit <= 0 {
		return &application.ValidationError{Field: "limit", Message: "limit must be positive"}
	}
	return nil
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	entries, err := c.app.RecentNotes(ctx, c.Limit)
	if err != nil {
		return nil, err
	}

	result := &HistoryResult{Entries: make([]HistoryItem, 0, len(entries))}
	for _, e := range entries {
		result.Entries = append(result.Entries, HistoryItem{Path: e.Path, OpenedAt: e.OpenedAt, Count: e.Count})
	}
	return result, nil
}

// LastCommand re-opens the most recently opened note of the current vault
type LastCommand struct {
	app *application.App
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(app *application.App) *LastCommand {
	return &LastCommand{app: app}
}

// Execute runs the last command
func (c *LastCommand) Execute(ctx context.Context) (*OpenNoteResult, error) {
	entries, err := c.app.RecentNotes(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &application.ValidationError{Field: "history", Message: "no note has been opened in this vault yet"}
	}

	v, err := c.app.Manager.Current()
	if err != nil {
		return nil, err
	}
	note, err := vault.LoadNote(domain.Join(v.Path(), filepath.FromSlash(entries[0].Path)))
	if err != nil {
		return nil, err
	}
	return openNote(ctx, c.app, note)
}
