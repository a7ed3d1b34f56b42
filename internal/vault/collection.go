package vault

import (
	"os"
	"slices"
	"strings"

	"jot/internal/domain"
)

// Collection is the capability shared by folders and vaults.
type Collection interface {
	NoteNamed(name string) (*Note, error)
	FolderNamed(name string) (*Folder, error)
	SortedNotes() []Note
	SortedFolders() []Folder
	RenderTree(prefix string, paint Paint) string
}

var (
	_ Collection = (*Folder)(nil)
	_ Collection = (*Vault)(nil)
	_ Collection = Location{}
)

// Paint decorates names while rendering a tree. Nil funcs leave names
// unchanged.
type Paint struct {
	Folder func(string) string
	Note   func(string) string
}

func (p Paint) folder(name string) string {
	if p.Folder == nil {
		return name
	}
	return p.Folder(name)
}

func (p Paint) note(name string) string {
	if p.Note == nil {
		return name
	}
	return p.Note(name)
}

// contents holds the children of a folder or vault.
type contents struct {
	folders []Folder
	notes   []Note
}

func scan(dir string) (contents, error) {
	var c contents

	entries, err := os.ReadDir(dir)
	if err != nil {
		return c, domain.FileSystem("read directory", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() == domain.MetadataDir {
			continue
		}
		path := domain.Join(dir, entry.Name())

		switch {
		case IsValidFolderPath(path) && isDir(path):
			folder, err := LoadFolder(path)
			if err != nil {
				return c, err
			}
			c.folders = append(c.folders, *folder)
		case IsValidNotePath(path):
			note, err := LoadNote(path)
			if err != nil {
				return c, err
			}
			c.notes = append(c.notes, *note)
		}
	}

	return c, nil
}

// NoteNamed finds a direct child note by exact name, without extension.
func (c *contents) NoteNamed(name string) (*Note, error) {
	name = domain.StripNoteExtension(name)
	for i := range c.notes {
		if c.notes[i].Name() == name {
			return &c.notes[i], nil
		}
	}
	return nil, domain.ItemNotFound(domain.KindNote, name)
}

// FolderNamed finds a direct child folder by exact name.
func (c *contents) FolderNamed(name string) (*Folder, error) {
	for i := range c.folders {
		if c.folders[i].Name() == name {
			return &c.folders[i], nil
		}
	}
	return nil, domain.ItemNotFound(domain.KindFolder, name)
}

// Notes returns the child notes in scan order.
func (c *contents) Notes() []Note {
	return slices.Clone(c.notes)
}

// Folders returns the child folders in scan order.
func (c *contents) Folders() []Folder {
	return slices.Clone(c.folders)
}

// SortedNotes returns the child notes ordered by name.
func (c *contents) SortedNotes() []Note {
	notes := slices.Clone(c.notes)
	slices.SortFunc(notes, func(a, b Note) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return notes
}

// SortedFolders returns the child folders ordered by name.
func (c *contents) SortedFolders() []Folder {
	folders := slices.Clone(c.folders)
	slices.SortFunc(folders, func(a, b Folder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return folders
}

// RenderTree draws the subtree, folders before notes, one entry per line.
// prefix is prepended to every line.
func (c *contents) RenderTree(prefix string, paint Paint) string {
	var b strings.Builder
	c.writeTree(&b, prefix, paint)
	return b.String()
}

func (c *contents) writeTree(b *strings.Builder, prefix string, paint Paint) {
	folders := c.SortedFolders()
	notes := c.SortedNotes()
	remaining := len(folders) + len(notes)

	for i := range folders {
		remaining--
		connector, indent := branch(remaining == 0)
		b.WriteString(prefix + connector + paint.folder(folders[i].Name()) + "\n")
		folders[i].writeTree(b, prefix+indent, paint)
	}
	for _, note := range notes {
		remaining--
		connector, _ := branch(remaining == 0)
		b.WriteString(prefix + connector + paint.note(note.Name()) + "\n")
	}
}

func branch(last bool) (connector, indent string) {
	if last {
		return "└── ", "    "
	}
	return "├── ", "│   "
}

// rebase rewrites every descendant path from oldRoot to newRoot after the
// owning directory moved.
func (c *contents) rebase(oldRoot, newRoot string) {
	for i := range c.notes {
		c.notes[i].path = newRoot + strings.TrimPrefix(c.notes[i].path, oldRoot)
	}
	for i := range c.folders {
		c.folders[i].rebase(oldRoot, newRoot)
	}
}

// WalkFunc is called for every descendant with its path relative to the
// walk root, using forward slashes.
type WalkFunc func(rel string, item Item) error

func (c *contents) walk(base string, fn WalkFunc) error {
	for i := range c.folders {
		f := &c.folders[i]
		rel := joinRel(base, f.Name())
		if err := fn(rel, f); err != nil {
			return err
		}
		if err := f.walk(rel, fn); err != nil {
			return err
		}
	}
	for i := range c.notes {
		n := &c.notes[i]
		if err := fn(joinRel(base, n.FullName()), n); err != nil {
			return err
		}
	}
	return nil
}

func joinRel(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}
