package vault

import (
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"jot/internal/atomicfile"
	"jot/internal/domain"
)

const storeFile = "data"

// StorePath returns the location of the store file of the vault at vaultDir.
func StorePath(vaultDir string) string {
	return domain.Join(vaultDir, domain.MetadataDir, storeFile)
}

type storeData struct {
	ActiveFolder *string          `yaml:"active_folder"`
	Aliases      map[string]string `yaml:"aliases"`
}

// Store is the per-vault record of the active folder and note aliases.
// Every mutator writes the whole record back immediately.
type Store struct {
	path string
	data storeData
}

// LoadStore reads the store at path, or returns an empty store when the
// file does not exist yet.
func LoadStore(path string) (*Store, error) {
	s := &Store{path: path, data: storeData{Aliases: map[string]string{}}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, domain.FileSystem("read vault store", path, err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, domain.FileSystem("parse vault store", path, err)
	}
	if s.data.Aliases == nil {
		s.data.Aliases = map[string]string{}
	}
	if s.data.ActiveFolder != nil && *s.data.ActiveFolder == "" {
		s.data.ActiveFolder = nil
	}
	return s, nil
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// ActiveFolderPath returns the vault-root-relative active folder, if set.
func (s *Store) ActiveFolderPath() (string, bool) {
	if s.data.ActiveFolder == nil {
		return "", false
	}
	return *s.data.ActiveFolder, true
}

// SetActiveFolderPath sets the active folder. An empty path clears it.
func (s *Store) SetActiveFolderPath(rel string) error {
	if rel == "" {
		s.data.ActiveFolder = nil
	} else {
		s.data.ActiveFolder = &rel
	}
	return s.save()
}

// SetBackingLocation points the store at a new file, e.g. after its vault
// moved, and writes it there.
func (s *Store) SetBackingLocation(path string) error {
	s.path = path
	return s.save()
}

// Aliases returns a copy of the note name to alias map.
func (s *Store) Aliases() map[string]string {
	return maps.Clone(s.data.Aliases)
}

// Alias returns the alias of a note.
func (s *Store) Alias(note string) (string, bool) {
	alias, ok := s.data.Aliases[note]
	return alias, ok
}

// NoteForAlias returns the note carrying alias.
func (s *Store) NoteForAlias(alias string) (string, bool) {
	for _, note := range slices.Sorted(maps.Keys(s.data.Aliases)) {
		if s.data.Aliases[note] == alias {
			return note, true
		}
	}
	return "", false
}

// SetAlias gives note the alias, replacing any previous one.
func (s *Store) SetAlias(note, alias string) error {
	s.data.Aliases[note] = alias
	return s.save()
}

// RemoveAlias drops the alias of note and returns it.
func (s *Store) RemoveAlias(note string) (string, error) {
	alias, ok := s.data.Aliases[note]
	if !ok {
		return "", &domain.AliasError{Note: note}
	}
	delete(s.data.Aliases, note)
	return alias, s.save()
}

// RenameNote moves an alias from oldName to newName. It is a no-op for
// notes without an alias.
func (s *Store) RenameNote(oldName, newName string) error {
	alias, ok := s.data.Aliases[oldName]
	if !ok {
		return nil
	}
	delete(s.data.Aliases, oldName)
	s.data.Aliases[newName] = alias
	return s.save()
}

// ForgetNote drops the alias of a note that left the vault.
func (s *Store) ForgetNote(name string) error {
	if _, ok := s.data.Aliases[name]; !ok {
		return nil
	}
	delete(s.data.Aliases, name)
	return s.save()
}

func (s *Store) save() error {
	err := atomicfile.Encode(s.path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(&s.data); err != nil {
			return err
		}
		return enc.Close()
	})
	return domain.FileSystem("write vault store", s.path, err)
}
