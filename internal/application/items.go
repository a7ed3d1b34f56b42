package application

import (
	"errors"
	"log/slog"
	"os"
	"slices"
	"strings"

	"jot/internal/domain"
	"jot/internal/vault"
)

// Change describes where an item was before and after a mutation, as
// vault-relative slash paths. To is empty when the item was removed. Vault
// is set when the item left for another vault; To is then relative to that
// vault.
type Change struct {
	Kind  domain.ItemKind
	Name  string
	From  string
	To    string
	Vault string
}

// Location resolves the collection of the current vault commands act on.
func (m *Manager) Location() (vault.Location, error) {
	v, err := m.Current()
	if err != nil {
		return vault.Location{}, err
	}
	return v.Location()
}

// ChangeFolder moves the active folder of the current vault by rel.
func (m *Manager) ChangeFolder(rel string) error {
	v, err := m.Current()
	if err != nil {
		return err
	}
	if err := v.ChangeFolder(rel); err != nil {
		return err
	}
	active, _ := v.Store().ActiveFolderPath()
	m.logger.Debug("active folder changed", slog.String("vault", v.Name()), slog.String("folder", active))
	return nil
}

// FindNote looks name up in the active location, first as a note name and
// then as an alias.
func (m *Manager) FindNote(name string) (*vault.Note, error) {
	v, err := m.Current()
	if err != nil {
		return nil, err
	}
	note, err := v.NoteInActiveFolder(name)
	if err == nil {
		return note, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}
	if target, ok := v.Store().NoteForAlias(name); ok {
		if aliased, aliasErr := v.NoteInActiveFolder(target); aliasErr == nil {
			return aliased, nil
		}
	}
	return nil, err
}

// FindFolder looks a folder up in the active location.
func (m *Manager) FindFolder(name string) (*vault.Folder, error) {
	loc, err := m.Location()
	if err != nil {
		return nil, err
	}
	return loc.FolderNamed(name)
}

// NoteNames returns the names of the notes in the active location, sorted.
func (m *Manager) NoteNames() ([]string, error) {
	loc, err := m.Location()
	if err != nil {
		return nil, err
	}
	notes := loc.SortedNotes()
	names := make([]string, 0, len(notes))
	for i := range notes {
		names = append(names, notes[i].Name())
	}
	return names, nil
}

// CreateNote creates an empty note in the active location.
func (m *Manager) CreateNote(name string) (*vault.Note, error) {
	if err := ValidateName("name", name); err != nil {
		return nil, err
	}
	loc, err := m.Location()
	if err != nil {
		return nil, err
	}
	path := loc.ChildPath(domain.KindNote, domain.StripNoteExtension(name))
	if _, err := os.Lstat(path); err == nil {
		return nil, domain.ItemExists(domain.KindNote, domain.StripNoteExtension(name))
	}

	note, err := vault.CreateNote(path)
	if err != nil {
		return nil, err
	}
	m.Reload()
	m.logger.Debug("note created", slog.String("path", path))
	return note, nil
}

// CreateFolder creates an empty folder in the active location.
func (m *Manager) CreateFolder(name string) (*vault.Folder, error) {
	if err := ValidateName("name", name); err != nil {
		return nil, err
	}
	loc, err := m.Location()
	if err != nil {
		return nil, err
	}
	path := loc.ChildPath(domain.KindFolder, name)
	if _, err := os.Lstat(path); err == nil {
		return nil, domain.ItemExists(domain.KindFolder, name)
	}

	folder, err := vault.CreateFolder(path)
	if err != nil {
		return nil, err
	}
	m.Reload()
	m.logger.Debug("folder created", slog.String("path", path))
	return folder, nil
}

// RenameItem renames a note or folder of the active location.
func (m *Manager) RenameItem(kind domain.ItemKind, name, newName string) (*Change, error) {
	if err := ValidateKind(kind, domain.KindNote, domain.KindFolder); err != nil {
		return nil, err
	}
	if err := ValidateName("newName", newName); err != nil {
		return nil, err
	}
	v, err := m.Current()
	if err != nil {
		return nil, err
	}
	item, err := m.lookup(kind, name)
	if err != nil {
		return nil, err
	}

	oldName := item.Name()
	from, err := domain.RelativeTo(item.Path(), v.Path())
	if err != nil {
		return nil, domain.ErrOutOfBounds
	}
	if err := item.Rename(newName); err != nil {
		return nil, err
	}
	to, _ := domain.RelativeTo(item.Path(), v.Path())

	if kind == domain.KindNote {
		if err := v.Store().RenameNote(oldName, item.Name()); err != nil {
			return nil, err
		}
	}
	m.Reload()

	m.logger.Debug("item renamed", slog.String("kind", kind.String()), slog.String("from", from), slog.String("to", to))
	return &Change{Kind: kind, Name: item.Name(), From: from, To: to}, nil
}

// MoveItem moves a note or folder of the active location into the
// directory destination, resolved against the active location like
// ChangeFolder.
func (m *Manager) MoveItem(kind domain.ItemKind, name, destination string) (*Change, error) {
	if err := ValidateKind(kind, domain.KindNote, domain.KindFolder); err != nil {
		return nil, err
	}
	if err := ValidateRequired("destination", destination); err != nil {
		return nil, err
	}
	v, err := m.Current()
	if err != nil {
		return nil, err
	}
	item, err := m.lookup(kind, name)
	if err != nil {
		return nil, err
	}

	dir, err := v.Resolve(destination)
	if err != nil {
		return nil, err
	}
	from, err := domain.RelativeTo(item.Path(), v.Path())
	if err != nil {
		return nil, domain.ErrOutOfBounds
	}
	if err := item.Relocate(vault.ChildPath(kind, dir, item.Name())); err != nil {
		return nil, err
	}
	to, _ := domain.RelativeTo(item.Path(), v.Path())
	m.Reload()

	m.logger.Debug("item moved", slog.String("kind", kind.String()), slog.String("from", from), slog.String("to", to))
	return &Change{Kind: kind, Name: item.Name(), From: from, To: to}, nil
}

// RemoveItem deletes a note or folder of the active location. Callers
// confirm with the user first.
func (m *Manager) RemoveItem(kind domain.ItemKind, name string) (*Change, error) {
	if err := ValidateKind(kind, domain.KindNote, domain.KindFolder); err != nil {
		return nil, err
	}
	v, err := m.Current()
	if err != nil {
		return nil, err
	}
	item, err := m.lookup(kind, name)
	if err != nil {
		return nil, err
	}

	from, err := domain.RelativeTo(item.Path(), v.Path())
	if err != nil {
		return nil, domain.ErrOutOfBounds
	}
	forget := []string{item.Name()}
	if kind == domain.KindFolder {
		forget = aliasedNotesUnder(v, from)
	}
	if err := item.Delete(); err != nil {
		return nil, err
	}

	for _, name := range forget {
		if err := v.Store().ForgetNote(name); err != nil {
			return nil, err
		}
	}
	m.Reload()

	m.logger.Debug("item removed", slog.String("kind", kind.String()), slog.String("path", from))
	return &Change{Kind: kind, Name: item.Name(), From: from}, nil
}

// SetAlias gives the note name an alias, replacing any previous one.
func (m *Manager) SetAlias(name, alias string) error {
	if err := ValidateName("alias", alias); err != nil {
		return err
	}
	v, err := m.Current()
	if err != nil {
		return err
	}
	note, err := v.NoteInActiveFolder(name)
	if err != nil {
		return err
	}
	if owner, ok := v.Store().NoteForAlias(alias); ok && owner != note.Name() {
		return &ValidationError{Field: "alias", Message: "alias " + alias + " already belongs to note " + owner}
	}
	return v.Store().SetAlias(note.Name(), alias)
}

// RemoveAlias drops the alias of note name and returns it.
func (m *Manager) RemoveAlias(name string) (string, error) {
	v, err := m.Current()
	if err != nil {
		return "", err
	}
	return v.Store().RemoveAlias(domain.StripNoteExtension(name))
}

func (m *Manager) lookup(kind domain.ItemKind, name string) (vault.Item, error) {
	if err := ValidateRequired("name", name); err != nil {
		return nil, err
	}
	if kind == domain.KindNote {
		return m.FindNote(name)
	}
	return m.FindFolder(name)
}

// leaveFolder returns the active folder pointer of v to the root when it
// lies at or below rel.
// aliasedNotesUnder lists the aliased notes below the folder at rel whose
// name no note outside that folder shares. Aliases are keyed by name, so
// those are the aliases that leave with the folder.
func aliasedNotesUnder(v *vault.Vault, rel string) []string {
	inside := map[string]bool{}
	outside := map[string]bool{}
	_ = v.Walk(func(path string, item vault.Item) error {
		if item.Kind() != domain.KindNote {
			return nil
		}
		if strings.HasPrefix(path, rel+"/") {
			inside[item.Name()] = true
		} else {
			outside[item.Name()] = true
		}
		return nil
	})

	var names []string
	for name := range inside {
		if _, ok := v.Store().Alias(name); ok && !outside[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// carryAliases moves the aliases of names from src to dst. An alias dst
// already holds for the same name wins.
func carryAliases(src, dst *vault.Store, names []string) error {
	for _, name := range names {
		alias, ok := src.Alias(name)
		if !ok {
			continue
		}
		if _, taken := dst.Alias(name); !taken {
			if err := dst.SetAlias(name, alias); err != nil {
				return err
			}
		}
		if err := src.ForgetNote(name); err != nil {
			return err
		}
	}
	return nil
}

func leaveFolder(v *vault.Vault, rel string) error {
	active, ok := v.Store().ActiveFolderPath()
	if !ok {
		return nil
	}
	if active != rel && !strings.HasPrefix(active, rel+"/") {
		return nil
	}
	return v.Store().SetActiveFolderPath("")
}
