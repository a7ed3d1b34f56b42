package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jot/internal/config"
	"jot/internal/domain"
	"jot/internal/ports"
	"jot/internal/vault"
)

// App carries everything a command needs. It is built once per process.
type App struct {
	Config   *config.Config
	Manager  *Manager
	Editor   ports.EditorLauncher
	Prompter ports.Prompter
	// History may be nil when the open history is not tracked.
	History ports.History
	Logger  *slog.Logger
}

// ResolveNote finds a note of the active location by exact name, then by
// alias, and finally lets the user pick one.
func (a *App) ResolveNote(name string) (*vault.Note, error) {
	note, err := a.Manager.FindNote(name)
	if err == nil || !errors.Is(err, domain.ErrItemNotFound) || a.Prompter == nil {
		return note, err
	}

	options, listErr := a.Manager.NoteNames()
	if listErr != nil || len(options) == 0 {
		return nil, err
	}
	choice, pickErr := a.Prompter.Select(fmt.Sprintf("No note named %q. Pick one:", name), options)
	if pickErr != nil {
		if errors.Is(pickErr, domain.ErrCancelled) {
			return nil, err
		}
		return nil, pickErr
	}
	return a.Manager.FindNote(choice)
}

// Confirm asks the prompter, treating an unreachable user as a no.
func (a *App) Confirm(question string) (bool, error) {
	if a.Prompter == nil {
		return false, nil
	}
	ok, err := a.Prompter.Confirm(question)
	if errors.Is(err, domain.ErrCancelled) {
		return false, nil
	}
	return ok, err
}

// OpenNote launches the editor on note and records it in the history.
func (a *App) OpenNote(ctx context.Context, note *vault.Note) (bool, error) {
	a.withHistory(func(v *vault.Vault, h ports.History) error {
		rel, err := domain.RelativeTo(note.Path(), v.Path())
		if err != nil {
			return err
		}
		return h.Record(ctx, rel)
	})
	return a.Editor.Open(note.Path())
}

// RecentNotes returns the most recently opened notes of the current vault.
func (a *App) RecentNotes(ctx context.Context, limit int) ([]ports.HistoryEntry, error) {
	v, err := a.Manager.Current()
	if err != nil {
		return nil, err
	}
	if a.History == nil {
		return nil, nil
	}
	if err := a.History.Open(v.Path()); err != nil {
		return nil, err
	}
	defer a.History.Close()

	if _, err := a.History.Prune(ctx); err != nil {
		a.log().Warn("history prune failed", slog.String("error", err.Error()))
	}
	return a.History.Recent(ctx, limit)
}

// TrackChange brings the history of the current vault in line with c.
// Failures are logged and otherwise ignored.
func (a *App) TrackChange(ctx context.Context, c *Change) {
	if c == nil {
		return
	}
	a.withHistory(func(_ *vault.Vault, h ports.History) error {
		tx, err := h.BeginTx(ctx)
		if err != nil {
			return err
		}
		if err := applyChange(tx, c); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}

func applyChange(tx ports.HistoryTx, c *Change) error {
	gone := c.To == "" || c.Vault != ""
	switch {
	case c.Kind == domain.KindNote && gone:
		return tx.DeletePath(c.From)
	case c.Kind == domain.KindNote:
		return tx.RenamePath(c.From, c.To)
	case gone:
		return tx.DeletePrefix(c.From)
	default:
		return tx.RenamePrefix(c.From, c.To)
	}
}

// withHistory opens the current vault's history around fn. History is
// best effort, so errors only reach the log.
func (a *App) withHistory(fn func(v *vault.Vault, h ports.History) error) {
	if a.History == nil {
		return
	}
	v, err := a.Manager.Current()
	if err != nil {
		return
	}
	if err := a.History.Open(v.Path()); err != nil {
		a.log().Warn("history unavailable", slog.String("vault", v.Name()), slog.String("error", err.Error()))
		return
	}
	defer a.History.Close()

	if err := fn(v, a.History); err != nil {
		a.log().Warn("history update failed", slog.String("vault", v.Name()), slog.String("error", err.Error()))
	}
}

func (a *App) log() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
