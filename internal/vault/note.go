package vault

import (
	"os"
	"path/filepath"

	"jot/internal/domain"
)

// Note is a single markdown file.
type Note struct {
	path string
}

// NotePath returns the location of a note named name inside parentDir.
func NotePath(parentDir, name string) string {
	return domain.Join(parentDir, name+domain.NoteExtension)
}

// IsValidNotePath reports whether path can hold a note: it carries the
// note extension and is not a directory.
func IsValidNotePath(path string) bool {
	if filepath.Ext(path) != domain.NoteExtension {
		return false
	}
	info, err := os.Stat(path)
	return err != nil || !info.IsDir()
}

func validateNotePath(path string) error {
	if !IsValidNotePath(path) {
		return &domain.NameError{Name: filepath.Base(path), Reason: "is not a valid note path"}
	}
	return nil
}

// CreateNote creates the file at path if it is missing. Existing content is
// kept. The name must pass domain.ValidateName; loading and relocating only
// require a note path.
func CreateNote(path string) (*Note, error) {
	if err := validateNotePath(path); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(displayName(domain.KindNote, path)); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, domain.FileSystem("create note", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, domain.FileSystem("create note", path, err)
	}

	return &Note{path: path}, nil
}

// LoadNote returns the note stored at path.
func LoadNote(path string) (*Note, error) {
	if err := validateNotePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, domain.ErrPathNotFound
	}
	return &Note{path: path}, nil
}

func (n *Note) Kind() domain.ItemKind { return domain.KindNote }
func (n *Note) Path() string          { return n.path }
func (n *Note) FullName() string      { return filepath.Base(n.path) }
func (n *Note) Name() string          { return displayName(domain.KindNote, n.path) }

// Dir returns the directory holding the note.
func (n *Note) Dir() string { return filepath.Dir(n.path) }

// Rename renames the note within its directory.
func (n *Note) Rename(newName string) error {
	if err := domain.ValidateName(newName); err != nil {
		return err
	}
	return n.Relocate(NotePath(n.Dir(), newName))
}

// Relocate moves the note to newPath.
func (n *Note) Relocate(newPath string) error {
	if err := validateNotePath(newPath); err != nil {
		return err
	}
	if err := moveEntry(domain.KindNote, n.path, newPath); err != nil {
		return err
	}
	n.path = newPath
	return nil
}

// Delete removes the note file.
func (n *Note) Delete() error {
	return domain.FileSystem("remove note", n.path, os.Remove(n.path))
}

// Read returns the note's content.
func (n *Note) Read() ([]byte, error) {
	data, err := os.ReadFile(n.path)
	if err != nil {
		return nil, domain.FileSystem("read note", n.path, err)
	}
	return data, nil
}

// Write replaces the note's content.
func (n *Note) Write(data []byte) error {
	return domain.FileSystem("write note", n.path, os.WriteFile(n.path, data, 0o644))
}
