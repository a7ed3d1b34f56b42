package vault

import (
	"os"
	"path/filepath"

	"jot/internal/domain"
)

// Folder is a directory inside a vault. Its children are loaded when the
// folder is loaded and are not re-scanned afterwards.
type Folder struct {
	contents
	path string
}

// FolderPath returns the location of a folder named name inside parentDir.
func FolderPath(parentDir, name string) string {
	return domain.Join(parentDir, name)
}

// IsValidFolderPath reports whether path can hold a folder: it is not a
// file and is not the reserved metadata directory.
func IsValidFolderPath(path string) bool {
	if filepath.Base(path) == domain.MetadataDir {
		return false
	}
	info, err := os.Stat(path)
	return err != nil || info.IsDir()
}

func validateFolderPath(path string) error {
	if !IsValidFolderPath(path) {
		return &domain.NameError{Name: filepath.Base(path), Reason: "is not a valid folder path"}
	}
	return nil
}

// CreateFolder creates the directory at path if it is missing. Unlike
// LoadFolder it also applies domain.ValidateName.
func CreateFolder(path string) (*Folder, error) {
	if err := validateFolderPath(path); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(filepath.Base(path)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, domain.FileSystem("create folder", path, err)
	}
	return &Folder{path: path}, nil
}

// LoadFolder loads the folder at path and, recursively, its children.
func LoadFolder(path string) (*Folder, error) {
	if err := validateFolderPath(path); err != nil {
		return nil, err
	}
	if !isDir(path) {
		return nil, domain.ErrPathNotFound
	}

	c, err := scan(path)
	if err != nil {
		return nil, err
	}
	return &Folder{contents: c, path: path}, nil
}

func (f *Folder) Kind() domain.ItemKind { return domain.KindFolder }
func (f *Folder) Path() string          { return f.path }
func (f *Folder) Name() string          { return filepath.Base(f.path) }
func (f *Folder) FullName() string      { return f.Name() }

// Rename renames the folder within its parent directory.
func (f *Folder) Rename(newName string) error {
	if err := domain.ValidateName(newName); err != nil {
		return err
	}
	return f.Relocate(FolderPath(filepath.Dir(f.path), newName))
}

// Relocate moves the folder and its subtree to newPath.
func (f *Folder) Relocate(newPath string) error {
	if err := validateFolderPath(newPath); err != nil {
		return err
	}
	if newPath != f.path && domain.IsContainedIn(newPath, f.path) {
		return domain.ErrOutOfBounds
	}
	if err := moveEntry(domain.KindFolder, f.path, newPath); err != nil {
		return err
	}
	f.rebase(f.path, newPath)
	return nil
}

// Delete removes the folder and everything below it.
func (f *Folder) Delete() error {
	return domain.FileSystem("remove folder", f.path, os.RemoveAll(f.path))
}

func (f *Folder) rebase(oldRoot, newRoot string) {
	f.contents.rebase(oldRoot, newRoot)
	f.path = newRoot + f.path[len(oldRoot):]
}
