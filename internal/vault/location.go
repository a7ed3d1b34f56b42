package vault

import "jot/internal/domain"

// LocationKind tells which collection a Location points at.
type LocationKind int

const (
	LocationVaultRoot LocationKind = iota
	LocationActiveFolder
)

// Location is the collection commands operate on: the vault root, or the
// active folder the vault is navigated into. It is resolved once per
// command.
type Location struct {
	Kind   LocationKind
	Vault  *Vault
	Folder *Folder
}

// Location resolves the vault's current collection.
func (v *Vault) Location() (Location, error) {
	folder, err := v.ActiveFolder()
	if err != nil {
		return Location{}, err
	}
	if folder == nil {
		return Location{Kind: LocationVaultRoot, Vault: v}, nil
	}
	return Location{Kind: LocationActiveFolder, Vault: v, Folder: folder}, nil
}

func (l Location) collection() *contents {
	if l.Kind == LocationActiveFolder {
		return &l.Folder.contents
	}
	return &l.Vault.contents
}

// Path returns the absolute directory of the location.
func (l Location) Path() string {
	if l.Kind == LocationActiveFolder {
		return l.Folder.Path()
	}
	return l.Vault.Path()
}

// Name returns the folder name, or the vault name at the root.
func (l Location) Name() string {
	if l.Kind == LocationActiveFolder {
		return l.Folder.Name()
	}
	return l.Vault.Name()
}

// RelativePath returns the location relative to the vault root, "" at
// the root.
func (l Location) RelativePath() string {
	if l.Kind == LocationVaultRoot {
		return ""
	}
	rel, _ := l.Vault.Store().ActiveFolderPath()
	return rel
}

// ChildPath returns where an item named name of kind would live here.
func (l Location) ChildPath(kind domain.ItemKind, name string) string {
	return ChildPath(kind, l.Path(), name)
}

func (l Location) NoteNamed(name string) (*Note, error)     { return l.collection().NoteNamed(name) }
func (l Location) FolderNamed(name string) (*Folder, error) { return l.collection().FolderNamed(name) }
func (l Location) SortedNotes() []Note                      { return l.collection().SortedNotes() }
func (l Location) SortedFolders() []Folder                  { return l.collection().SortedFolders() }

func (l Location) RenderTree(prefix string, paint Paint) string {
	return l.collection().RenderTree(prefix, paint)
}
