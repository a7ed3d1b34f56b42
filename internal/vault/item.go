// Package vault holds the filesystem-backed item hierarchy: notes, folders
// and vaults, plus the per-vault store of active folder and aliases.
package vault

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"jot/internal/domain"
)

// Item is the capability shared by notes, folders and vaults.
type Item interface {
	Kind() domain.ItemKind
	// Path is the absolute location on disk.
	Path() string
	// Name is the display name, without extension.
	Name() string
	// FullName is the base name on disk, with extension.
	FullName() string
	Rename(newName string) error
	Relocate(newPath string) error
	Delete() error
}

var (
	_ Item = (*Note)(nil)
	_ Item = (*Folder)(nil)
	_ Item = (*Vault)(nil)
)

// ChildPath generates the path an item of kind named name would have
// inside parentDir.
func ChildPath(kind domain.ItemKind, parentDir, name string) string {
	if kind == domain.KindNote {
		return NotePath(parentDir, name)
	}
	return domain.Join(parentDir, name)
}

// moveEntry renames from to to. It refuses to overwrite an existing entry
// and falls back to copy+remove when the rename crosses devices.
func moveEntry(kind domain.ItemKind, from, to string) error {
	if from == to {
		return nil
	}
	if _, err := os.Lstat(to); err == nil {
		return domain.ItemExists(kind, displayName(kind, to))
	}

	err := os.Rename(from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return domain.FileSystem("move", from, err)
	}

	if err := copyTree(from, to); err != nil {
		_ = os.RemoveAll(to)
		return domain.FileSystem("copy", from, err)
	}
	return domain.FileSystem("remove", from, os.RemoveAll(from))
}

func copyTree(from, to string) error {
	return filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

func copyFile(from, to string, perm fs.FileMode) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func displayName(kind domain.ItemKind, path string) string {
	base := filepath.Base(path)
	if kind == domain.KindNote {
		return domain.StripNoteExtension(base)
	}
	return base
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
