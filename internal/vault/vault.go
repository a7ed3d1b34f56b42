package vault

import (
	"os"
	"path/filepath"
	"slices"

	"jot/internal/domain"
)

// Vault is the root of a note tree. It owns its children and its Store.
type Vault struct {
	contents
	path  string
	store *Store
}

// VaultPath returns the location of a vault named name inside parentDir.
func VaultPath(parentDir, name string) string {
	return domain.Join(parentDir, name)
}

// IsValidVaultPath applies the folder rules. Whether the vault is
// registered is the registry's concern.
func IsValidVaultPath(path string) bool {
	return IsValidFolderPath(path)
}

func validateVaultPath(path string) error {
	if !IsValidVaultPath(path) {
		return &domain.NameError{Name: filepath.Base(path), Reason: "is not a valid vault path"}
	}
	return nil
}

// CreateVault creates the vault directory and its store.
func CreateVault(path string) (*Vault, error) {
	if err := validateVaultPath(path); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(filepath.Base(path)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, domain.FileSystem("create vault", path, err)
	}

	store, err := LoadStore(StorePath(path))
	if err != nil {
		return nil, err
	}
	if err := store.save(); err != nil {
		return nil, err
	}

	return &Vault{path: path, store: store}, nil
}

// LoadVault scans the vault at path and loads its store.
func LoadVault(path string) (*Vault, error) {
	if err := validateVaultPath(path); err != nil {
		return nil, err
	}
	if !isDir(path) {
		return nil, domain.ErrPathNotFound
	}

	c, err := scan(path)
	if err != nil {
		return nil, err
	}
	store, err := LoadStore(StorePath(path))
	if err != nil {
		return nil, err
	}

	return &Vault{contents: c, path: path, store: store}, nil
}

func (v *Vault) Kind() domain.ItemKind { return domain.KindVault }
func (v *Vault) Path() string          { return v.path }
func (v *Vault) Name() string          { return filepath.Base(v.path) }
func (v *Vault) FullName() string      { return v.Name() }
func (v *Vault) Store() *Store         { return v.store }

// MetadataPath returns the vault's reserved metadata directory.
func (v *Vault) MetadataPath() string {
	return domain.Join(v.path, domain.MetadataDir)
}

// Rename renames the vault directory within its parent directory.
func (v *Vault) Rename(newName string) error {
	if err := domain.ValidateName(newName); err != nil {
		return err
	}
	return v.Relocate(VaultPath(filepath.Dir(v.path), newName))
}

// Relocate moves the vault directory to newPath and repoints the store.
func (v *Vault) Relocate(newPath string) error {
	if err := validateVaultPath(newPath); err != nil {
		return err
	}
	if newPath != v.path && domain.IsContainedIn(newPath, v.path) {
		return domain.ErrOutOfBounds
	}
	if err := moveEntry(domain.KindVault, v.path, newPath); err != nil {
		return err
	}

	v.contents.rebase(v.path, newPath)
	v.path = newPath
	return v.store.SetBackingLocation(StorePath(newPath))
}

// Delete removes the vault directory and everything below it.
func (v *Vault) Delete() error {
	return domain.FileSystem("remove vault", v.path, os.RemoveAll(v.path))
}

// ActiveLocation returns the absolute path of the active folder, or the
// vault root when none is set.
func (v *Vault) ActiveLocation() string {
	rel, ok := v.store.ActiveFolderPath()
	if !ok {
		return v.path
	}
	return domain.Join(v.path, filepath.FromSlash(rel))
}

// ActiveFolder returns the folder the vault is navigated into, or nil at
// the vault root.
func (v *Vault) ActiveFolder() (*Folder, error) {
	rel, ok := v.store.ActiveFolderPath()
	if !ok {
		return nil, nil
	}
	return v.folderAt(rel)
}

// folderAt walks the loaded tree along rel. An empty rel is the root.
func (v *Vault) folderAt(rel string) (*Folder, error) {
	current := &v.contents
	var folder *Folder
	for _, segment := range domain.Segments(rel) {
		next, err := current.FolderNamed(segment)
		if err != nil {
			return nil, domain.ItemNotFound(domain.KindFolder, rel)
		}
		folder = next
		current = &next.contents
	}
	return folder, nil
}

// NoteInActiveFolder looks name up in the active folder, or in the vault
// root when none is set.
func (v *Vault) NoteInActiveFolder(name string) (*Note, error) {
	folder, err := v.ActiveFolder()
	if err != nil {
		return nil, err
	}
	if folder != nil {
		return folder.NoteNamed(name)
	}
	return v.NoteNamed(name)
}

// ChangeFolder moves the active folder by rel, relative to the current
// active location. The stored pointer is always relative to the vault
// root, and is left untouched on failure.
func (v *Vault) ChangeFolder(rel string) error {
	target, err := v.Resolve(rel)
	if err != nil {
		return err
	}
	relative, err := domain.RelativeTo(target, v.path)
	if err != nil {
		return domain.ErrOutOfBounds
	}
	if _, err := v.folderAt(relative); err != nil {
		return domain.ErrPathNotFound
	}
	return v.store.SetActiveFolderPath(relative)
}

// Resolve turns rel, relative to the active location, into an absolute
// directory inside the vault. It fails with ErrPathNotFound when the
// directory is missing and ErrOutOfBounds when it lies outside the vault.
func (v *Vault) Resolve(rel string) (string, error) {
	target := domain.Normalize(domain.Join(v.ActiveLocation(), rel))

	if !isDir(target) {
		return "", domain.ErrPathNotFound
	}
	if !domain.IsContainedIn(target, v.path) {
		return "", domain.ErrOutOfBounds
	}

	relative, err := domain.RelativeTo(target, v.path)
	if err != nil {
		return "", domain.ErrOutOfBounds
	}
	if slices.Contains(domain.Segments(relative), domain.MetadataDir) {
		return "", domain.ErrPathNotFound
	}
	return target, nil
}

// Walk calls fn for every folder and note in the vault, depth first,
// folders before notes.
func (v *Vault) Walk(fn WalkFunc) error {
	return v.contents.walk("", fn)
}
